// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Register is a named storage location of the CPU.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A   = Register(0) // A
	REG_B   = Register(1) // B
	REG_C   = Register(2) // C
	REG_O1  = Register(3) // O1
	REG_O2  = Register(4) // O2
	REG_ACC = Register(5) // ACC
)

// registerMap maps register names to registers.
var registerMap = map[string]Register{
	"A":   REG_A,
	"B":   REG_B,
	"C":   REG_C,
	"O1":  REG_O1,
	"O2":  REG_O2,
	"ACC": REG_ACC,
}

// ParseRegister looks up a register by name.
func ParseRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// Writable returns true if the register can be a move destination.
func (reg Register) Writable() bool {
	return reg >= REG_A && reg <= REG_O2
}
