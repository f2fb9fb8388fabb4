package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(IterSeqOf("a"), IterSeqOf[string](), IterSeqOf("b", "c"))
	assert.Equal([]string{"a", "b", "c"}, slices.Collect(seq))

	// Early termination stops the remaining sequences.
	var got []string
	for val := range seq {
		got = append(got, val)
		if val == "b" {
			break
		}
	}
	assert.Equal([]string{"a", "b"}, got)
}
