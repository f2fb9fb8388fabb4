// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lexer converts WH-02 assembly source into a stream of tokens.
package lexer

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"
)

// isNewline returns true for line terminator runes.
func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// isSpace returns true for ASCII whitespace, newlines included.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// isBlank returns true for ASCII whitespace that does not end a line.
func isBlank(r rune) bool {
	return isSpace(r) && !isNewline(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isHexStop returns true for runes that terminate a hex literal.
func isHexStop(r rune) bool {
	if isSpace(r) {
		return true
	}
	return strings.ContainsRune(",;#$@.", r)
}

// maxHexits is the number of hex digits in a byte literal.
const maxHexits = 2

// Lexer is a pull tokenizer over a rune stream.
type Lexer struct {
	Position Position // Position of the next rune to be consumed.

	input *bufio.Reader
	prev  rune  // Last rune consumed.
	err   error // Sticky read error.
}

// NewLexer creates a lexer reading from input.
func NewLexer(input io.Reader) *Lexer {
	return &Lexer{
		Position: Start,
		input:    bufio.NewReader(input),
	}
}

// peek returns the next rune without consuming it.
func (lex *Lexer) peek() (r rune, ok bool) {
	if lex.err != nil {
		return
	}

	r, _, err := lex.input.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			lex.err = err
		}
		return
	}

	lex.input.UnreadRune()
	ok = true
	return
}

// take consumes the next rune into value.
func (lex *Lexer) take(value *strings.Builder) {
	r, _, err := lex.input.ReadRune()
	if err != nil {
		return
	}
	lex.advance(r)
	value.WriteRune(r)
}

// advance moves the position past a consumed rune.
func (lex *Lexer) advance(r rune) {
	lex.Position = lex.Position.advance(lex.prev, r)
	lex.prev = r
}

// takeWhile consumes runes into value while accept is true.
func (lex *Lexer) takeWhile(value *strings.Builder, accept func(r rune) bool) {
	for {
		r, ok := lex.peek()
		if !ok || !accept(r) {
			return
		}
		lex.take(value)
	}
}

// takeHex consumes the hexits of a byte literal, normalized to uppercase.
func (lex *Lexer) takeHex(value *strings.Builder) (err error) {
	var digits int

	for {
		r, ok := lex.peek()
		if !ok || isHexStop(r) {
			break
		}
		if digits == maxHexits {
			err = &ErrLex{Position: lex.Position, Rune: r, Err: ErrHexLength}
			return
		}
		if !isHexit(r) {
			err = &ErrLex{Position: lex.Position, Rune: r, Err: ErrInvalidHexit}
			return
		}
		lex.advance(r)
		lex.input.ReadRune()
		value.WriteRune(unicode.ToUpper(r))
		digits++
	}

	if digits == 0 {
		err = &ErrLex{Position: lex.Position, Err: ErrHexLength}
	}

	return
}

// Lex returns the next token. Once the input is exhausted every call returns
// a KIND_EOF token.
func (lex *Lexer) Lex() (tok Token, err error) {
	tok.Start = lex.Position

	r, ok := lex.peek()
	if !ok {
		err = lex.err
		tok.Kind = KIND_EOF
		return
	}

	var value strings.Builder

	switch {
	case r == '.':
		tok.Kind = KIND_WORD
		lex.take(&value)
		lex.takeWhile(&value, isAlnum)
	case r == ',':
		tok.Kind = KIND_COMMA
		lex.take(&value)
	case r == ';':
		tok.Kind = KIND_COMMENT
		lex.take(&value)
		lex.takeWhile(&value, func(r rune) bool { return !isNewline(r) })
	case r == '#':
		tok.Kind = KIND_HEX
		lex.take(&value)
		err = lex.takeHex(&value)
	case r == '$':
		tok.Kind = KIND_ADDRESS
		lex.take(&value)
		err = lex.takeHex(&value)
	case r == '@':
		tok.Kind = KIND_LOCATION
		lex.take(&value)
		lex.takeWhile(&value, isAlnum)
	case unicode.IsLetter(r):
		tok.Kind = KIND_OPERATION
		lex.takeWhile(&value, isAlnum)
	case isNewline(r):
		tok.Kind = KIND_NEWLINE
		lex.takeWhile(&value, isNewline)
	case isBlank(r):
		tok.Kind = KIND_WHITESPACE
		lex.takeWhile(&value, isBlank)
	default:
		lex.take(&value)
		err = &ErrLex{Position: tok.Start, Rune: r, Err: ErrUnknownCharacter}
	}

	tok.Value = value.String()

	if err == nil {
		err = lex.err
	}

	return
}

// All returns an iterator over the remaining tokens, ending with the
// KIND_EOF token or the first error.
func (lex *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(tok Token, err error) bool) {
		for {
			tok, err := lex.Lex()
			if !yield(tok, err) {
				return
			}
			if err != nil || tok.Kind == KIND_EOF {
				return
			}
		}
	}
}
