// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageDump(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{"START $00", "MOV #0A,A", "HLT"})
	if !assert.NoError(err) {
		return
	}

	zeros := strings.Repeat(" 00", IMAGE_ROW_LEN)[1:]

	lines := slices.Collect(img.Lines())
	assert.Len(lines, 1+DEFAULT_CAPACITY/IMAGE_ROW_LEN)
	assert.Equal(IMAGE_HEADER, lines[0])
	assert.Equal("00: 21 0A 20 00 00 00 00 00 00 00 00 00 00 00 00 00", lines[1])
	assert.Equal("10: "+zeros, lines[2])
	assert.Equal("f0: "+zeros, lines[16])

	text := img.String()
	assert.True(strings.HasPrefix(text, "v3.0 hex words addressed\n00: 21 0A 20 00"))
	assert.True(strings.HasSuffix(text, "f0: "+zeros+"\n"))

	var buff strings.Builder
	n, err := img.WriteTo(&buff)
	assert.NoError(err)
	assert.Equal(int64(len(text)), n)
	assert.Equal(text, buff.String())
}

func TestImageWide(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Capacity: 0x120, Width: 4}
	img, err := compile(asm, []string{"START $FF", "MOV $01,@O2"})
	if !assert.NoError(err) {
		return
	}

	lines := slices.Collect(img.Lines())
	assert.Len(lines, 1+0x120/IMAGE_ROW_LEN)
	assert.True(strings.HasPrefix(lines[1], "000: 0000 0000"))
	assert.True(strings.HasSuffix(lines[16], " 001E"))
	assert.True(strings.HasPrefix(lines[17], "100: 0001 0000"))
	assert.True(strings.HasPrefix(lines[18], "110: "))
}

func TestImagePartialRow(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(20, 2)
	img.Words[19] = 0x2c

	assert.Equal([]string{
		IMAGE_HEADER,
		"00: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00",
		"10: 00 00 00 2C",
	}, slices.Collect(img.Lines()))

	// Consumers may stop early.
	for line := range img.Lines() {
		assert.Equal(IMAGE_HEADER, line)
		break
	}
}
