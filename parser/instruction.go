// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"fmt"

	"github.com/ezrec/wh02/lexer"
)

// Instruction is a parsed line of assembly. It is one of NoOperand, Unary,
// or Binary.
type Instruction interface {
	fmt.Stringer
	Position() lexer.Position // Position of the keyword in the source.
	Op() Keyword              // Instruction keyword.
	instruction()
}

// NoOperand is an instruction without operands, such as HLT.
type NoOperand struct {
	At      lexer.Position
	Keyword Keyword
}

// Unary is an instruction with a single operand, such as DEF .label.
type Unary struct {
	At      lexer.Position
	Keyword Keyword
	Operand Operand
}

// Binary is an instruction with a source and destination, such as MOV #01,@A.
type Binary struct {
	At          lexer.Position
	Keyword     Keyword
	Source      Operand
	Destination Operand
}

var (
	_ Instruction = NoOperand{}
	_ Instruction = Unary{}
	_ Instruction = Binary{}
)

func (in NoOperand) instruction() {}

func (in NoOperand) Position() lexer.Position {
	return in.At
}

func (in NoOperand) Op() Keyword {
	return in.Keyword
}

func (in NoOperand) String() string {
	return in.Keyword.String()
}

func (in Unary) instruction() {}

func (in Unary) Position() lexer.Position {
	return in.At
}

func (in Unary) Op() Keyword {
	return in.Keyword
}

func (in Unary) String() string {
	return fmt.Sprintf("%v %v", in.Keyword, in.Operand)
}

func (in Binary) instruction() {}

func (in Binary) Position() lexer.Position {
	return in.At
}

func (in Binary) Op() Keyword {
	return in.Keyword
}

func (in Binary) String() string {
	return fmt.Sprintf("%v %v,%v", in.Keyword, in.Source, in.Destination)
}
