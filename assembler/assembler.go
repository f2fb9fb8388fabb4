// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"
	"strconv"

	"github.com/ezrec/wh02/cpu"
	"github.com/ezrec/wh02/lexer"
	"github.com/ezrec/wh02/parser"
)

const (
	DEFAULT_CAPACITY = 256 // Words in a WH-02 memory image.
	DEFAULT_WIDTH    = 2   // Hexits per dumped word.
)

// Assembler encodes instructions into a memory image.
type Assembler struct {
	Verbose  bool // If set, verbosely logs the assembler actions.
	Capacity int  // Image size in words, DEFAULT_CAPACITY if zero.
	Width    int  // Hexits per dumped word, DEFAULT_WIDTH if zero.

	Origin int            // Origin address of the last run.
	Label  map[string]int // Map of labels to addresses from the last run.
}

// cursor tracks the write position of one assembly run.
type cursor struct {
	img     *Image
	address int
	emitted bool
}

// emit writes words at the cursor and advances it.
func (cur *cursor) emit(words ...uint16) (err error) {
	if cur.address+len(words) > len(cur.img.Words) {
		err = &ErrRange{Address: cur.address, Capacity: len(cur.img.Words)}
		return
	}

	copy(cur.img.Words[cur.address:], words)
	cur.address += len(words)
	cur.emitted = true

	return
}

// Compile parses and assembles a source text. If the source has any parse
// diagnostics, no assembly is attempted.
func (asm *Assembler) Compile(input io.Reader) (img *Image, err error) {
	p := parser.NewParser(lexer.NewLexer(input))
	p.Verbose = asm.Verbose

	insts, err := p.ParseAll()
	if err != nil {
		return
	}

	img, err = asm.Assemble(insts)
	return
}

// Assemble encodes instructions, in order, into a new memory image.
func (asm *Assembler) Assemble(insts []parser.Instruction) (img *Image, err error) {
	capacity := asm.Capacity
	if capacity == 0 {
		capacity = DEFAULT_CAPACITY
	}

	width := asm.Width
	if width == 0 {
		width = DEFAULT_WIDTH
	}

	asm.Origin = 0
	asm.Label = make(map[string]int, 16)

	cur := &cursor{img: NewImage(capacity, width)}

	for _, inst := range insts {
		var words []uint16
		address := cur.address

		switch in := inst.(type) {
		case parser.NoOperand:
			words, err = asm.noOperand(in)
		case parser.Unary:
			err = asm.unary(in, cur)
		case parser.Binary:
			words, err = asm.binary(in)
		default:
			err = ErrExpressionType
		}

		if err == nil && len(words) != 0 {
			err = cur.emit(words...)
		}

		if err != nil {
			wrapped := &ErrAssemble{Instruction: inst, Err: err}
			if inst != nil {
				wrapped.Position = inst.Position()
			}
			err = wrapped
			return
		}

		if asm.Verbose && len(words) != 0 {
			log.Printf("asm: %02x: %v ; %v", address, cpu.Opcode(words[0]).Mnemonic(), inst)
		}
	}

	img = cur.img

	return
}

func (asm *Assembler) noOperand(in parser.NoOperand) (words []uint16, err error) {
	switch in.Keyword {
	case parser.KEYWORD_HLT:
		words = []uint16{uint16(cpu.OP_HLT)}
	case parser.KEYWORD_NOP:
		words = []uint16{uint16(cpu.OP_NOP)}
	default:
		err = ErrExpressionType
	}
	return
}

func (asm *Assembler) unary(in parser.Unary, cur *cursor) (err error) {
	switch in.Keyword {
	case parser.KEYWORD_DEF:
		label := in.Operand.Value
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate(label)
			return
		}
		asm.Label[label] = cur.address
		if asm.Verbose {
			log.Printf("asm: %02x: .%v", cur.address, label)
		}
	case parser.KEYWORD_START:
		if cur.emitted {
			err = ErrOriginLate
			return
		}
		origin, perr := strconv.ParseUint(in.Operand.Value, 16, 16)
		if perr != nil {
			err = ErrOrigin(in.Operand.Value)
			return
		}
		if int(origin) >= len(cur.img.Words) {
			err = &ErrRange{Address: int(origin), Capacity: len(cur.img.Words)}
			return
		}
		asm.Origin = int(origin)
		cur.address = asm.Origin
	case parser.KEYWORD_JMP:
		// No jump opcode exists in the control ROM yet.
		if asm.Verbose {
			log.Printf("asm: %02x: %v not encoded", cur.address, in)
		}
	default:
		err = ErrExpressionType
	}
	return
}

// byteOf parses the hex value of an immediate or address operand.
func byteOf(op parser.Operand) (word uint16, err error) {
	value, perr := strconv.ParseUint(op.Value, 16, 8)
	if perr != nil {
		err = ErrOperandValue(op.Value)
		return
	}
	word = uint16(value)
	return
}

func (asm *Assembler) binary(in parser.Binary) (words []uint16, err error) {
	if in.Keyword != parser.KEYWORD_MOV {
		err = ErrExpressionType
		return
	}

	src, dst := in.Source, in.Destination
	toAddress := dst.Kind() == parser.OPERAND_ADDRESS
	dstReg, toRegister := dst.Register()

	// arg is the operand encoded after the opcode, unless it is a register.
	arg := src

	var op cpu.Opcode
	var ok bool

	switch src.Kind() {
	case parser.OPERAND_IMMEDIATE:
		switch {
		case toAddress:
			op, ok = cpu.OP_MOV_BUS_RAM, true
		case toRegister:
			op, ok = cpu.MovImmediate(dstReg)
		}
	case parser.OPERAND_ADDRESS:
		switch {
		case toAddress:
			op, ok = cpu.OP_MOV_RAM_RAM, true
		case toRegister:
			op, ok = cpu.MovLoad(dstReg)
		}
	case parser.OPERAND_LOCATION:
		srcReg, fromRegister := src.Register()
		switch {
		case !fromRegister:
		case toAddress:
			op, ok = cpu.MovStore(srcReg)
			arg = dst
		case toRegister:
			op, ok = cpu.MovRegister(srcReg, dstReg)
		}
	}

	if !ok {
		err = &ErrOperandCombination{Source: src, Destination: dst}
		return
	}

	words = []uint16{uint16(op)}

	if arg.Kind() != parser.OPERAND_LOCATION {
		var word uint16
		word, err = byteOf(arg)
		if err != nil {
			return
		}
		words = append(words, word)
	}

	return
}
