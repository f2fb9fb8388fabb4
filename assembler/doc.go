// Package assembler encodes parsed WH-02 instructions into a memory image.
//
// Assembly is a single forward pass. A write cursor starts at address zero,
// or at the origin given by a leading START directive, and advances by one
// word per opcode and operand byte emitted. DEF records the cursor under a
// label name without emitting anything.
//
// The finished image is written in the Logisim "v3.0 hex words addressed"
// format, sixteen words per row.
package assembler
