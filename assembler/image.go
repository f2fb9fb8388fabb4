// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/wh02/cpu"
	"github.com/ezrec/wh02/internal"
)

const (
	IMAGE_HEADER  = "v3.0 hex words addressed" // Logisim memory file header.
	IMAGE_ROW_LEN = 16                         // Words per dump row.
)

// Image is a fixed size memory image.
type Image struct {
	Words []uint16 // Memory contents, one word per address.
	Width int      // Hexits per word in the dump.
}

// NewImage creates an image of capacity words, all set to NOP.
func NewImage(capacity int, width int) (img *Image) {
	img = &Image{
		Words: make([]uint16, capacity),
		Width: width,
	}

	for n := range img.Words {
		img.Words[n] = uint16(cpu.OP_NOP)
	}

	return
}

// addressWidth is the number of hexits needed for the largest row address.
func (img *Image) addressWidth() int {
	return max(2, len(fmt.Sprintf("%x", max(0, len(img.Words)-1))))
}

// Rows returns an iterator over the formatted rows of the image.
func (img *Image) Rows() iter.Seq[string] {
	return func(yield func(row string) bool) {
		awidth := img.addressWidth()
		address := 0
		for chunk := range slices.Chunk(img.Words, IMAGE_ROW_LEN) {
			words := make([]string, len(chunk))
			for n, word := range chunk {
				words[n] = fmt.Sprintf("%0*X", img.Width, word)
			}
			if !yield(fmt.Sprintf("%0*x: %v", awidth, address, strings.Join(words, " "))) {
				return
			}
			address += len(chunk)
		}
	}
}

// Lines returns an iterator over the lines of the hex dump, header first.
func (img *Image) Lines() iter.Seq[string] {
	return internal.IterSeqConcat(internal.IterSeqOf(IMAGE_HEADER), img.Rows())
}

// WriteTo writes the hex dump of the image.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	for line := range img.Lines() {
		var count int
		count, err = fmt.Fprintln(w, line)
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}

func (img *Image) String() string {
	var buff strings.Builder
	img.WriteTo(&buff)
	return buff.String()
}
