// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

// Keyword is an assembler operation or directive.
type Keyword int

//go:generate go tool stringer -linecomment -type=Keyword
const (
	KEYWORD_MOV   = Keyword(0) // MOV
	KEYWORD_HLT   = Keyword(1) // HLT
	KEYWORD_NOP   = Keyword(2) // NOP
	KEYWORD_DEF   = Keyword(3) // DEF
	KEYWORD_START = Keyword(4) // START
	KEYWORD_JMP   = Keyword(5) // JMP
)

// keywordMap maps source text to keywords.
var keywordMap = map[string]Keyword{
	"MOV":   KEYWORD_MOV,
	"HLT":   KEYWORD_HLT,
	"NOP":   KEYWORD_NOP,
	"DEF":   KEYWORD_DEF,
	"START": KEYWORD_START,
	"JMP":   KEYWORD_JMP,
}

// ParseKeyword converts source text into a Keyword.
func ParseKeyword(text string) (keyword Keyword, err error) {
	keyword, ok := keywordMap[text]
	if !ok {
		err = ErrKeywordInvalid
	}
	return
}

// Shape is the operand arity of an expression.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NO_OPERAND = Shape(0) // no-operand
	SHAPE_UNARY      = Shape(1) // unary
	SHAPE_BINARY     = Shape(2) // binary
)

// Shape returns the only expression shape the keyword may appear in.
func (keyword Keyword) Shape() Shape {
	switch keyword {
	case KEYWORD_HLT, KEYWORD_NOP:
		return SHAPE_NO_OPERAND
	case KEYWORD_DEF, KEYWORD_START, KEYWORD_JMP:
		return SHAPE_UNARY
	}
	return SHAPE_BINARY
}
