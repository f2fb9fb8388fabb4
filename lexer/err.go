package lexer

import (
	"errors"

	"github.com/ezrec/wh02/translate"
)

var f = translate.From

var (
	ErrUnknownCharacter = errors.New(f("unknown character"))
	ErrInvalidHexit     = errors.New(f("invalid hexit"))
	ErrHexLength        = errors.New(f("invalid hex value, expected two hexits"))
)

// ErrLex is a lexical error at a specific source position.
type ErrLex struct {
	Position Position
	Rune     rune // Offending rune, if any.
	Err      error
}

func (err ErrLex) Error() string {
	if err.Rune != 0 {
		return f("%v: %v '%c'", err.Position, err.Err, err.Rune)
	}
	return f("%v: %v", err.Position, err.Err)
}

func (err ErrLex) Unwrap() error {
	return err.Err
}
