package gxvm

import "math"

// encodeInstr packs the five instruction fields into a word per the §4.3
// layout. It is not a general assembler — just enough to hand-build the
// []uint64 program fixtures the tests below need, the same way the teacher's
// cpu tests hand-encode raw instruction words.
func encodeInstr(op Opcode, flags, arg1, arg2 uint8, third uint32) uint64 {
	return uint64(op)<<56 | uint64(flags)<<48 | uint64(arg1)<<40 | uint64(arg2)<<32 | uint64(third)
}

func rInt(op Opcode, arg1, arg2, arg3 uint8) uint64 {
	return encodeInstr(op, flagKindRInt, arg1, arg2, uint32(arg3)<<24)
}

func iInt(op Opcode, arg1, arg2 uint8, imm int32) uint64 {
	return encodeInstr(op, flagKindIInt, arg1, arg2, uint32(imm))
}

func rFloat(op Opcode, arg1, arg2, arg3 uint8) uint64 {
	return encodeInstr(op, flagKindRFloat, arg1, arg2, uint32(arg3)<<24)
}

func iFloat(op Opcode, arg1, arg2 uint8, imm float32) uint64 {
	return encodeInstr(op, flagKindIFloat, arg1, arg2, math.Float32bits(imm))
}

// naked encodes a zero-operand opcode (HALT, EITER, FEMPTY, FSWAP, FFILL, ...).
func naked(op Opcode) uint64 {
	return encodeInstr(op, flagKindRInt, 0, 0, 0)
}

func loadProgram(vm *VM, words ...uint64) {
	for i, w := range words {
		vm.Program[i] = w
	}
}
