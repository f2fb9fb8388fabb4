// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"fmt"
)

// Position is a location in the source text.
type Position struct {
	Line   uint // Source line, starting at 1.
	Column uint // Runes consumed on the current line.
}

// Start is the position of the first rune of a source text.
var Start = Position{Line: 1}

// advance returns the position after consuming r, where prev is the rune
// consumed before it. CR, LF and a CR LF pair each end one line.
func (pos Position) advance(prev, r rune) Position {
	switch {
	case r == '\n' && prev == '\r':
		return pos
	case r == '\n', r == '\r':
		return Position{Line: pos.Line + 1}
	}

	pos.Column++
	return pos
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column+1)
}
