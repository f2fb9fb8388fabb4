// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

// Kind is the type of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_OPERATION  = Kind(0) // Operation
	KIND_HEX        = Kind(1) // Hex
	KIND_ADDRESS    = Kind(2) // Address
	KIND_LOCATION   = Kind(3) // Location
	KIND_WORD       = Kind(4) // Word
	KIND_COMMA      = Kind(5) // Comma
	KIND_COMMENT    = Kind(6) // Comment
	KIND_WHITESPACE = Kind(7) // Whitespace
	KIND_NEWLINE    = Kind(8) // Newline
	KIND_EOF        = Kind(9) // EndOfFile
)

// Trivial returns true if the token kind carries no meaning for the grammar.
func (kind Kind) Trivial() bool {
	switch kind {
	case KIND_WHITESPACE, KIND_COMMENT, KIND_EOF:
		return true
	}
	return false
}
