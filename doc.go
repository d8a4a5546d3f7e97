// Package iapx86 implements the core of an Intel 8086 (iAPX 86) interpreter:
// the fetch/decode/execute loop, segmented effective-address computation,
// the ALU flag engine, opcode dispatch (including the ModR/M "group"
// sub-dispatch), and the register/stack access layer.
//
// The package is deliberately narrow. It has no notion of I/O ports, an
// interrupt controller, a BIOS, or a co-processor; it does not load
// programs and it does not decode the bytes it executes into any textual
// form. A host owns all of that. What it promises is architectural-state
// fidelity: given a byte stream at CS:IP and a budget of instructions to
// retire, it reproduces the register, flag, and memory effects a real
// 8086 would produce.
package iapx86
