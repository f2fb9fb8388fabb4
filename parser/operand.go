// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"fmt"

	"github.com/ezrec/wh02/cpu"
)

// OperandKind is the type of an operand, selected by its indicator.
// An operand without an indicator is a bare register name.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_LOCATION  = OperandKind(0) // location
	OPERAND_IMMEDIATE = OperandKind(1) // immediate
	OPERAND_ADDRESS   = OperandKind(2) // address
	OPERAND_WORD      = OperandKind(3) // word
)

// indicatorMap maps indicator sigils to operand kinds.
var indicatorMap = map[rune]OperandKind{
	'#': OPERAND_IMMEDIATE,
	'$': OPERAND_ADDRESS,
	'@': OPERAND_LOCATION,
	'.': OPERAND_WORD,
}

// Operand is an instruction argument.
type Operand struct {
	Indicator rune   // Sigil of the operand, or 0 if none.
	Value     string // Operand text following the indicator.
}

// NewOperand splits the indicator from the operand text.
func NewOperand(text string) (op Operand) {
	for n, r := range text {
		if n == 0 {
			if _, ok := indicatorMap[r]; ok {
				op.Indicator = r
				continue
			}
		}
		op.Value = text[n:]
		break
	}
	return
}

// Kind returns the operand kind selected by the indicator.
func (op Operand) Kind() OperandKind {
	return indicatorMap[op.Indicator]
}

// Register returns the register named by a location operand.
func (op Operand) Register() (reg cpu.Register, ok bool) {
	if op.Kind() != OPERAND_LOCATION {
		return
	}
	return cpu.ParseRegister(op.Value)
}

func (op Operand) String() string {
	if op.Indicator == 0 {
		return op.Value
	}
	return fmt.Sprintf("%c%v", op.Indicator, op.Value)
}
