package assembler

import (
	"errors"

	"github.com/ezrec/wh02/lexer"
	"github.com/ezrec/wh02/parser"
	"github.com/ezrec/wh02/translate"
)

var f = translate.From

var (
	ErrExpressionType = errors.New(f("unexpected expression type"))
	ErrOriginLate     = errors.New(f("START after code was emitted"))
)

type ErrOrigin string

func (err ErrOrigin) Error() string {
	return f("invalid origin '%v', expected a hex address", string(err))
}

type ErrOperandValue string

func (err ErrOperandValue) Error() string {
	return f("'%v' is not a hex byte", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

// ErrOperandCombination is a MOV with no encoding for its operands.
type ErrOperandCombination struct {
	Source      parser.Operand
	Destination parser.Operand
}

func (err ErrOperandCombination) Error() string {
	return f("unexpected operand combination %v,%v", err.Source, err.Destination)
}

// ErrRange is a write outside of the memory image.
type ErrRange struct {
	Address  int
	Capacity int
}

func (err ErrRange) Error() string {
	return f("address 0x%02x out of range of %d word image", err.Address, err.Capacity)
}

// ErrAssemble locates an encoding error at its instruction.
type ErrAssemble struct {
	Position    lexer.Position
	Instruction parser.Instruction
	Err         error
}

func (err ErrAssemble) Error() string {
	if err.Instruction == nil {
		return f("%v", err.Err)
	}
	return f("%v: '%v' %v", err.Position, err.Instruction, err.Err)
}

func (err ErrAssemble) Unwrap() error {
	return err.Err
}
