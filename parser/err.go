package parser

import (
	"errors"

	"github.com/ezrec/wh02/lexer"
	"github.com/ezrec/wh02/translate"
)

var f = translate.From

var (
	ErrKeywordInvalid     = errors.New(f("invalid keyword"))
	ErrLocationInvalid    = errors.New(f("invalid location"))
	ErrStartNotFirst      = errors.New(f("START must be the first instruction"))
	ErrDestinationInvalid = errors.New(f("invalid destination, expected an address or one of A, B, C, O1, O2"))
	ErrSelfMove           = errors.New(f("invalid move, source and destination are the same"))
)

// ErrExpressionLength is the token count of a line that matches no
// expression shape.
type ErrExpressionLength int

func (err ErrExpressionLength) Error() string {
	return f("invalid expression length, expected 2, 3, or 5, got %d", int(err))
}

// ErrTokenKind is a token of the wrong kind for its place in an expression.
type ErrTokenKind struct {
	Got  lexer.Kind
	Want []lexer.Kind
}

func (err ErrTokenKind) Error() string {
	return f("invalid token %v, expected one of %v", err.Got, err.Want)
}

// ErrKeywordShape is a keyword used in the wrong expression shape.
type ErrKeywordShape struct {
	Keyword Keyword
	Shape   Shape
}

func (err ErrKeywordShape) Error() string {
	return f("keyword %v is not valid in a %v expression", err.Keyword, err.Shape)
}

// ErrParse is a parse error at a specific source position.
type ErrParse struct {
	Position lexer.Position
	Err      error
}

func (err ErrParse) Error() string {
	var lexErr *lexer.ErrLex
	if errors.As(err.Err, &lexErr) {
		return f("lexical error %v", lexErr)
	}
	return f("%v: %v", err.Position, err.Err)
}

func (err ErrParse) Unwrap() error {
	return err.Err
}
