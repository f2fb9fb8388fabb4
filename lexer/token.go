// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"fmt"
)

// Token is a single lexical element of the source text.
type Token struct {
	Value string   // Source text of the token, including any sigil.
	Kind  Kind     // Type of the token.
	Start Position // Position of the first rune of the token.
}

func (tok Token) String() string {
	return fmt.Sprintf("%v(%q)@%v", tok.Kind, tok.Value, tok.Start)
}
