// Package cpu describes the instruction set of the WH-02 8-bit processor.
//
// The WH-02 has five general purpose registers (A, B, C, O1, O2) and a
// read-only accumulator (ACC). Every instruction is a single opcode byte,
// optionally followed by one immediate or address byte. The opcode values
// here are shared with the control logic ROM, which defines the microcode
// steps executed for each opcode.
package cpu
