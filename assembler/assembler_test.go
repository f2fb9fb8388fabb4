// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wh02/cpu"
	"github.com/ezrec/wh02/parser"
)

func compile(asm *Assembler, program []string) (*Image, error) {
	return asm.Compile(strings.NewReader(strings.Join(program, "\n")))
}

// nopExcept verifies the image holds words at address, and NOP elsewhere.
func nopExcept(t *testing.T, img *Image, address int, words ...uint16) {
	assert := assert.New(t)

	for n, word := range img.Words {
		if n >= address && n < address+len(words) {
			assert.Equal(words[n-address], word, "address 0x%02x", n)
		} else {
			assert.Equal(uint16(cpu.OP_NOP), word, "address 0x%02x", n)
		}
	}
}

func TestAssemblerNop(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{"NOP", ""})
	assert.NoError(err)
	assert.Len(img.Words, DEFAULT_CAPACITY)
	nopExcept(t, img, 0, 0x00)
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{
		"START $00",
		"MOV #0A,A",
		"HLT",
	})
	assert.NoError(err)
	nopExcept(t, img, 0, 0x21, 0x0A, 0x20)
}

func TestAssemblerOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{"START $10", "HLT"})
	assert.NoError(err)
	assert.Equal(0x10, asm.Origin)
	nopExcept(t, img, 0x10, 0x20)
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	with, err := compile(asm, []string{"START $08", "NOP", "DEF .here", "MOV #01,@B", "DEF .end", "HLT"})
	assert.NoError(err)
	assert.Equal(map[string]int{"here": 0x09, "end": 0x0b}, asm.Label)

	without, err := compile(asm, []string{"START $08", "NOP", "MOV #01,@B", "HLT"})
	assert.NoError(err)
	assert.Empty(asm.Label)

	assert.Equal(without.Words, with.Words)
	nopExcept(t, with, 0x08, 0x00, 0x22, 0x01, 0x20)
}

func TestAssemblerLabelDuplicate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{"DEF .x", "NOP", "DEF .x"})
	assert.Nil(img)
	assert.ErrorIs(err, ErrLabelDuplicate("x"))

	var asmErr *ErrAssemble
	if assert.True(errors.As(err, &asmErr)) {
		assert.Equal(uint(3), asmErr.Position.Line)
	}
}

func TestAssemblerJump(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Verbose: true}
	img, err := compile(asm, []string{"DEF .top", "JMP .top", "JMP $00", "HLT"})
	assert.NoError(err)
	nopExcept(t, img, 0, 0x20)
}

func TestAssemblerMov(t *testing.T) {
	table := [](struct {
		Line  string
		Words []uint16
	}){
		{"MOV #0A,A", []uint16{0x21, 0x0A}},
		{"MOV #ff,@B", []uint16{0x22, 0xFF}},
		{"MOV #01,@C", []uint16{0x23, 0x01}},
		{"MOV #02,@O1", []uint16{0x24, 0x02}},
		{"MOV #03,@O2", []uint16{0x25, 0x03}},
		{"MOV #04,$80", []uint16{0x26, 0x04}},
		{"MOV $10,@A", []uint16{0x1A, 0x10}},
		{"MOV $11,@B", []uint16{0x1B, 0x11}},
		{"MOV $12,@C", []uint16{0x1C, 0x12}},
		{"MOV $13,@O1", []uint16{0x1D, 0x13}},
		{"MOV $14,@O2", []uint16{0x1E, 0x14}},
		{"MOV $15,$16", []uint16{0x1F, 0x15}},
		{"MOV @A,$F0", []uint16{0x05, 0xF0}},
		{"MOV @O2,$F1", []uint16{0x19, 0xF1}},
		{"MOV ACC,$F2", []uint16{0x2C, 0xF2}},
		{"MOV @ACC,@A", []uint16{0x27}},
		{"MOV @ACC,O2", []uint16{0x2B}},
		{"MOV @O2,@O1", []uint16{0x18}},
	}

	for _, testcase := range table {
		t.Run(testcase.Line, func(t *testing.T) {
			assert := assert.New(t)

			asm := &Assembler{}
			img, err := compile(asm, []string{testcase.Line})
			assert.NoError(err)
			if img != nil {
				nopExcept(t, img, 0, testcase.Words...)
			}
		})
	}
}

func TestAssemblerMovRegisters(t *testing.T) {
	assert := assert.New(t)

	names := []string{"A", "B", "C", "O1", "O2"}
	seen := map[uint16]string{}

	for _, src := range names {
		for _, dst := range names {
			if src == dst {
				continue
			}
			line := fmt.Sprintf("MOV @%v,@%v", src, dst)
			asm := &Assembler{}
			img, err := compile(asm, []string{line})
			if !assert.NoError(err) {
				continue
			}
			op := img.Words[0]
			assert.NotEqual(uint16(cpu.OP_NOP), op, line)
			assert.Equal(uint16(cpu.OP_NOP), img.Words[1], line)
			prior, dup := seen[op]
			assert.False(dup, "%v and %v share 0x%02x", prior, line, op)
			seen[op] = line
		}
	}

	assert.Len(seen, 20)
	assert.Equal("MOV @A,@B", seen[0x01])
	assert.Equal("MOV @O2,@O1", seen[0x18])
}

type foreign struct {
	parser.NoOperand
}

func TestAssemblerErrors(t *testing.T) {
	mov := func(src, dst parser.Operand) parser.Instruction {
		return parser.Binary{Keyword: parser.KEYWORD_MOV, Source: src, Destination: dst}
	}
	start := func(value string) parser.Instruction {
		return parser.Unary{Keyword: parser.KEYWORD_START, Operand: parser.Operand{Indicator: '$', Value: value}}
	}
	nop := parser.NoOperand{Keyword: parser.KEYWORD_NOP}

	table := [](struct {
		Name  string
		Insts []parser.Instruction
		Err   error
	}){
		{"foreign", []parser.Instruction{foreign{nop}}, ErrExpressionType},
		{"nil", []parser.Instruction{nil}, ErrExpressionType},
		{"shape", []parser.Instruction{parser.NoOperand{Keyword: parser.KEYWORD_MOV}}, ErrExpressionType},
		{"binary", []parser.Instruction{parser.Binary{Keyword: parser.KEYWORD_HLT}}, ErrExpressionType},
		{"unary", []parser.Instruction{parser.Unary{Keyword: parser.KEYWORD_NOP}}, ErrExpressionType},
		{"origin", []parser.Instruction{start("ZZ")}, ErrOrigin("ZZ")},
		{"origin late", []parser.Instruction{nop, start("10")}, ErrOriginLate},
		{"bad byte", []parser.Instruction{mov(parser.Operand{Indicator: '#', Value: "123"}, parser.Operand{Value: "A"})}, ErrOperandValue("123")},
	}

	for _, testcase := range table {
		t.Run(testcase.Name, func(t *testing.T) {
			assert := assert.New(t)

			asm := &Assembler{}
			img, err := asm.Assemble(testcase.Insts)
			assert.Nil(img)
			assert.ErrorIs(err, testcase.Err)
		})
	}

	combos := [][2]parser.Operand{
		{{Indicator: '@', Value: "A"}, {Indicator: '@', Value: "A"}},
		{{Indicator: '@', Value: "A"}, {Indicator: '@', Value: "ACC"}},
		{{Indicator: '@', Value: "Z"}, {Indicator: '@', Value: "A"}},
		{{Indicator: '#', Value: "01"}, {Indicator: '#', Value: "02"}},
		{{Indicator: '.', Value: "x"}, {Indicator: '@', Value: "A"}},
		{{Indicator: '$', Value: "01"}, {Indicator: '.', Value: "x"}},
	}

	for _, combo := range combos {
		asm := &Assembler{}
		_, err := asm.Assemble([]parser.Instruction{mov(combo[0], combo[1])})
		var comboErr *ErrOperandCombination
		if assert.True(t, errors.As(err, &comboErr), "%v,%v", combo[0], combo[1]) {
			assert.Equal(t, combo[0], comboErr.Source)
			assert.Equal(t, combo[1], comboErr.Destination)
		}
	}
}

func TestAssemblerRange(t *testing.T) {
	assert := assert.New(t)

	var rangeErr *ErrRange

	asm := &Assembler{Capacity: 2}
	_, err := compile(asm, []string{"MOV #01,A", "HLT"})
	if assert.True(errors.As(err, &rangeErr)) {
		assert.Equal(ErrRange{Address: 2, Capacity: 2}, *rangeErr)
	}

	// A two word instruction must fit entirely.
	asm = &Assembler{}
	_, err = compile(asm, []string{"START $FF", "MOV #01,A"})
	if assert.True(errors.As(err, &rangeErr)) {
		assert.Equal(ErrRange{Address: 0xff, Capacity: 256}, *rangeErr)
	}

	_, err = compile(asm, []string{"START $FF", "HLT"})
	assert.NoError(err)

	asm = &Assembler{Capacity: 16}
	_, err = compile(asm, []string{"START $10", "HLT"})
	if assert.True(errors.As(err, &rangeErr)) {
		assert.Equal(ErrRange{Address: 0x10, Capacity: 16}, *rangeErr)
	}
}

func TestAssemblerParseErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	img, err := compile(asm, []string{"MOV A,A", "HLT", "FOO"})
	assert.Nil(img)
	assert.ErrorIs(err, parser.ErrSelfMove)
	assert.ErrorIs(err, parser.ErrKeywordInvalid)
	assert.Nil(asm.Label, "assembly is skipped")

	img, err = compile(asm, []string{"NOP", "START $10"})
	assert.Nil(img)
	assert.ErrorIs(err, parser.ErrStartNotFirst)
}
