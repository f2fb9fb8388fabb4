// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package parser groups WH-02 tokens into lines and validates them into
// instructions.
package parser

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/wh02/lexer"
)

// unaryOperands are the operand token kinds allowed for each unary keyword.
var unaryOperands = map[Keyword][]lexer.Kind{
	KEYWORD_DEF:   {lexer.KIND_WORD},
	KEYWORD_START: {lexer.KIND_ADDRESS},
	KEYWORD_JMP:   {lexer.KIND_ADDRESS, lexer.KIND_WORD},
}

// binaryOperands are the source and destination token kinds allowed for
// each binary keyword. Operation tokens stand for bare register names.
var binaryOperands = map[Keyword][2][]lexer.Kind{
	KEYWORD_MOV: {
		{lexer.KIND_HEX, lexer.KIND_ADDRESS, lexer.KIND_LOCATION, lexer.KIND_OPERATION},
		{lexer.KIND_HEX, lexer.KIND_ADDRESS, lexer.KIND_LOCATION, lexer.KIND_OPERATION, lexer.KIND_WORD},
	},
}

var (
	kindsOperation = []lexer.Kind{lexer.KIND_OPERATION}
	kindsComma     = []lexer.Kind{lexer.KIND_COMMA}
)

// Parser converts a token stream into instructions, one line at a time.
type Parser struct {
	Verbose      bool          // If set, logs each parsed line.
	Instructions []Instruction // Instructions parsed so far.
	Errors       []error       // Diagnostics for lines that failed validation.

	lexer *lexer.Lexer
	done  bool
}

// NewParser creates a parser pulling tokens from lex.
func NewParser(lex *lexer.Lexer) *Parser {
	return &Parser{
		lexer: lex,
	}
}

// Done returns true once the token stream is exhausted, or a fatal error
// has been returned.
func (p *Parser) Done() bool {
	return p.done
}

// readLine collects tokens up to and including the next newline or EOF.
func (p *Parser) readLine() (line []lexer.Token, err error) {
	for {
		tok, lexErr := p.lexer.Lex()
		if lexErr != nil {
			pos := p.lexer.Position
			var posErr *lexer.ErrLex
			if errors.As(lexErr, &posErr) {
				pos = posErr.Position
			}
			err = &ErrParse{Position: pos, Err: lexErr}
			return
		}

		line = append(line, tok)

		switch tok.Kind {
		case lexer.KIND_EOF:
			p.done = true
			return
		case lexer.KIND_NEWLINE:
			return
		}
	}
}

// Parse parses the next line of input. Validation errors are appended to
// Errors and nil is returned; the error result is only set for failures
// that stop parsing altogether.
func (p *Parser) Parse() (err error) {
	if p.done {
		return
	}

	line, err := p.readLine()
	if err != nil {
		p.done = true
		return
	}

	toks := slices.DeleteFunc(line, func(tok lexer.Token) bool {
		return tok.Kind.Trivial()
	})

	// Expression length counts the line terminator, when there is one.
	length := len(toks)

	// The terminator is optional on the last line for every shape, so a
	// source that does not end in a newline still assembles its last line.
	if len(toks) > 0 && toks[len(toks)-1].Kind == lexer.KIND_NEWLINE {
		toks = toks[:len(toks)-1]
	}

	if len(toks) == 0 {
		return
	}

	if p.Verbose {
		log.Printf("parse: %v: %v", toks[0].Start.Line, toks)
	}

	var inst Instruction
	var lineErr error

	switch len(toks) {
	case 1:
		inst, lineErr = p.parseNoOperand(toks)
	case 2:
		inst, lineErr = p.parseUnary(toks)
	case 4:
		inst, lineErr = p.parseBinary(toks)
	default:
		lineErr = &ErrParse{Position: toks[0].Start, Err: ErrExpressionLength(length)}
	}

	switch {
	case errors.Is(lineErr, ErrStartNotFirst):
		p.done = true
		err = lineErr
	case lineErr != nil:
		p.Errors = append(p.Errors, lineErr)
	default:
		p.Instructions = append(p.Instructions, inst)
	}

	return
}

// ParseAll parses the remaining input, returning the valid instructions and
// every diagnostic joined into a single error.
func (p *Parser) ParseAll() (instructions []Instruction, err error) {
	var fatal error
	for !p.Done() && fatal == nil {
		fatal = p.Parse()
	}

	instructions = p.Instructions
	err = errors.Join(append(slices.Clone(p.Errors), fatal)...)

	return
}

// checkKinds verifies each token against the kinds allowed at its place.
func checkKinds(toks []lexer.Token, kinds ...[]lexer.Kind) (err error) {
	for n, tok := range toks {
		if !slices.Contains(kinds[n], tok.Kind) {
			err = &ErrParse{Position: tok.Start, Err: &ErrTokenKind{Got: tok.Kind, Want: kinds[n]}}
			return
		}
	}
	return
}

// checkKeyword parses the operation token and checks it against the shape of
// its line.
func checkKeyword(tok lexer.Token, shape Shape) (keyword Keyword, err error) {
	err = checkKinds([]lexer.Token{tok}, kindsOperation)
	if err != nil {
		return
	}

	keyword, err = ParseKeyword(tok.Value)
	if err != nil {
		err = &ErrParse{Position: tok.Start, Err: err}
		return
	}

	if keyword.Shape() != shape {
		err = &ErrParse{Position: tok.Start, Err: &ErrKeywordShape{Keyword: keyword, Shape: shape}}
		return
	}

	return
}

// operand converts a token into an operand, validating location names.
func operand(tok lexer.Token) (op Operand, err error) {
	op = NewOperand(tok.Value)
	if op.Kind() == OPERAND_LOCATION {
		if _, ok := op.Register(); !ok {
			err = &ErrParse{Position: tok.Start, Err: ErrLocationInvalid}
			return
		}
	}
	return
}

func (p *Parser) parseNoOperand(toks []lexer.Token) (inst Instruction, err error) {
	kw, err := checkKeyword(toks[0], SHAPE_NO_OPERAND)
	if err != nil {
		return
	}

	inst = NoOperand{At: toks[0].Start, Keyword: kw}
	return
}

func (p *Parser) parseUnary(toks []lexer.Token) (inst Instruction, err error) {
	kw, err := checkKeyword(toks[0], SHAPE_UNARY)
	if err != nil {
		return
	}

	err = checkKinds(toks[1:], unaryOperands[kw])
	if err != nil {
		return
	}

	if kw == KEYWORD_START && len(p.Instructions) > 0 {
		err = &ErrParse{Position: toks[0].Start, Err: ErrStartNotFirst}
		return
	}

	op, err := operand(toks[1])
	if err != nil {
		return
	}

	inst = Unary{At: toks[0].Start, Keyword: kw, Operand: op}
	return
}

func (p *Parser) parseBinary(toks []lexer.Token) (inst Instruction, err error) {
	kw, err := checkKeyword(toks[0], SHAPE_BINARY)
	if err != nil {
		return
	}

	kinds := binaryOperands[kw]
	err = checkKinds(toks[1:], kinds[0], kindsComma, kinds[1])
	if err != nil {
		return
	}

	src, err := operand(toks[1])
	if err != nil {
		return
	}

	dst, err := operand(toks[3])
	if err != nil {
		return
	}

	if dst.Kind() != OPERAND_ADDRESS {
		reg, ok := dst.Register()
		if !ok || !reg.Writable() {
			err = &ErrParse{Position: toks[3].Start, Err: ErrDestinationInvalid}
			return
		}
		if from, ok := src.Register(); ok && from == reg {
			err = &ErrParse{Position: toks[1].Start, Err: ErrSelfMove}
			return
		}
	}

	inst = Binary{At: toks[0].Start, Keyword: kw, Source: src, Destination: dst}
	return
}
