// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Opcode is a WH-02 instruction byte.
type Opcode uint8

// Opcodes, as numbered by the control logic ROM.
// RAM operands are addresses, BUS operands are immediates.
const (
	OP_NOP       = Opcode(0x00)
	OP_MOV_A_B   = Opcode(0x01)
	OP_MOV_A_C   = Opcode(0x02)
	OP_MOV_A_O1  = Opcode(0x03)
	OP_MOV_A_O2  = Opcode(0x04)
	OP_MOV_A_RAM = Opcode(0x05)
	OP_MOV_B_A   = Opcode(0x06)
	OP_MOV_B_C   = Opcode(0x07)
	OP_MOV_B_O1  = Opcode(0x08)
	OP_MOV_B_O2  = Opcode(0x09)
	OP_MOV_B_RAM = Opcode(0x0A)
	OP_MOV_C_A   = Opcode(0x0B)
	OP_MOV_C_B   = Opcode(0x0C)
	OP_MOV_C_O1  = Opcode(0x0D)
	OP_MOV_C_O2  = Opcode(0x0E)
	OP_MOV_C_RAM = Opcode(0x0F)

	OP_MOV_O1_A   = Opcode(0x10)
	OP_MOV_O1_B   = Opcode(0x11)
	OP_MOV_O1_C   = Opcode(0x12)
	OP_MOV_O1_O2  = Opcode(0x13)
	OP_MOV_O1_RAM = Opcode(0x14)
	OP_MOV_O2_A   = Opcode(0x15)
	OP_MOV_O2_B   = Opcode(0x16)
	OP_MOV_O2_C   = Opcode(0x17)
	OP_MOV_O2_O1  = Opcode(0x18)
	OP_MOV_O2_RAM = Opcode(0x19)

	OP_MOV_RAM_A   = Opcode(0x1A)
	OP_MOV_RAM_B   = Opcode(0x1B)
	OP_MOV_RAM_C   = Opcode(0x1C)
	OP_MOV_RAM_O1  = Opcode(0x1D)
	OP_MOV_RAM_O2  = Opcode(0x1E)
	OP_MOV_RAM_RAM = Opcode(0x1F)

	OP_HLT = Opcode(0x20)

	OP_MOV_BUS_A   = Opcode(0x21)
	OP_MOV_BUS_B   = Opcode(0x22)
	OP_MOV_BUS_C   = Opcode(0x23)
	OP_MOV_BUS_O1  = Opcode(0x24)
	OP_MOV_BUS_O2  = Opcode(0x25)
	OP_MOV_BUS_RAM = Opcode(0x26)

	OP_MOV_ACC_A   = Opcode(0x27)
	OP_MOV_ACC_B   = Opcode(0x28)
	OP_MOV_ACC_C   = Opcode(0x29)
	OP_MOV_ACC_O1  = Opcode(0x2A)
	OP_MOV_ACC_O2  = Opcode(0x2B)
	OP_MOV_ACC_RAM = Opcode(0x2C)
)

// movRegisterMap is the register to register move table.
var movRegisterMap = map[[2]Register]Opcode{
	{REG_A, REG_B}:  OP_MOV_A_B,
	{REG_A, REG_C}:  OP_MOV_A_C,
	{REG_A, REG_O1}: OP_MOV_A_O1,
	{REG_A, REG_O2}: OP_MOV_A_O2,

	{REG_B, REG_A}:  OP_MOV_B_A,
	{REG_B, REG_C}:  OP_MOV_B_C,
	{REG_B, REG_O1}: OP_MOV_B_O1,
	{REG_B, REG_O2}: OP_MOV_B_O2,

	{REG_C, REG_A}:  OP_MOV_C_A,
	{REG_C, REG_B}:  OP_MOV_C_B,
	{REG_C, REG_O1}: OP_MOV_C_O1,
	{REG_C, REG_O2}: OP_MOV_C_O2,

	{REG_O1, REG_A}:  OP_MOV_O1_A,
	{REG_O1, REG_B}:  OP_MOV_O1_B,
	{REG_O1, REG_C}:  OP_MOV_O1_C,
	{REG_O1, REG_O2}: OP_MOV_O1_O2,

	{REG_O2, REG_A}:  OP_MOV_O2_A,
	{REG_O2, REG_B}:  OP_MOV_O2_B,
	{REG_O2, REG_C}:  OP_MOV_O2_C,
	{REG_O2, REG_O1}: OP_MOV_O2_O1,

	{REG_ACC, REG_A}:  OP_MOV_ACC_A,
	{REG_ACC, REG_B}:  OP_MOV_ACC_B,
	{REG_ACC, REG_C}:  OP_MOV_ACC_C,
	{REG_ACC, REG_O1}: OP_MOV_ACC_O1,
	{REG_ACC, REG_O2}: OP_MOV_ACC_O2,
}

// movImmediateMap selects the immediate load by destination register.
var movImmediateMap = map[Register]Opcode{
	REG_A:  OP_MOV_BUS_A,
	REG_B:  OP_MOV_BUS_B,
	REG_C:  OP_MOV_BUS_C,
	REG_O1: OP_MOV_BUS_O1,
	REG_O2: OP_MOV_BUS_O2,
}

// movLoadMap selects the memory load by destination register.
var movLoadMap = map[Register]Opcode{
	REG_A:  OP_MOV_RAM_A,
	REG_B:  OP_MOV_RAM_B,
	REG_C:  OP_MOV_RAM_C,
	REG_O1: OP_MOV_RAM_O1,
	REG_O2: OP_MOV_RAM_O2,
}

// movStoreMap selects the memory store by source register.
var movStoreMap = map[Register]Opcode{
	REG_A:   OP_MOV_A_RAM,
	REG_B:   OP_MOV_B_RAM,
	REG_C:   OP_MOV_C_RAM,
	REG_O1:  OP_MOV_O1_RAM,
	REG_O2:  OP_MOV_O2_RAM,
	REG_ACC: OP_MOV_ACC_RAM,
}

// MovRegister returns the opcode that copies register src into dst.
func MovRegister(src, dst Register) (op Opcode, ok bool) {
	op, ok = movRegisterMap[[2]Register{src, dst}]
	return
}

// MovImmediate returns the opcode that loads an immediate byte into dst.
func MovImmediate(dst Register) (op Opcode, ok bool) {
	op, ok = movImmediateMap[dst]
	return
}

// MovLoad returns the opcode that loads a memory byte into dst.
func MovLoad(dst Register) (op Opcode, ok bool) {
	op, ok = movLoadMap[dst]
	return
}

// MovStore returns the opcode that stores register src to memory.
func MovStore(src Register) (op Opcode, ok bool) {
	op, ok = movStoreMap[src]
	return
}

// Mnemonic returns the assembly form of the opcode, with 'nn' standing in
// for an immediate byte and '$nn' for an address byte.
func (op Opcode) Mnemonic() string {
	switch op {
	case OP_NOP:
		return "NOP"
	case OP_HLT:
		return "HLT"
	case OP_MOV_RAM_RAM:
		return "MOV $nn,$mm"
	case OP_MOV_BUS_RAM:
		return "MOV #nn,$mm"
	}
	for pair, code := range movRegisterMap {
		if op == code {
			return fmt.Sprintf("MOV @%v,@%v", pair[0], pair[1])
		}
	}
	for reg, code := range movImmediateMap {
		if op == code {
			return fmt.Sprintf("MOV #nn,@%v", reg)
		}
	}
	for reg, code := range movLoadMap {
		if op == code {
			return fmt.Sprintf("MOV $nn,@%v", reg)
		}
	}
	for reg, code := range movStoreMap {
		if op == code {
			return fmt.Sprintf("MOV @%v,$nn", reg)
		}
	}
	return fmt.Sprintf("0x%02X", uint8(op))
}

func (op Opcode) String() string {
	return fmt.Sprintf("%02X", uint8(op))
}

// All returns an iterator over every defined opcode, in numeric order.
func All() iter.Seq[Opcode] {
	codes := []Opcode{OP_NOP, OP_HLT, OP_MOV_RAM_RAM, OP_MOV_BUS_RAM}
	for _, table := range []map[Register]Opcode{movImmediateMap, movLoadMap, movStoreMap} {
		codes = slices.AppendSeq(codes, maps.Values(table))
	}
	codes = slices.AppendSeq(codes, maps.Values(movRegisterMap))
	slices.Sort(codes)
	return slices.Values(codes)
}
