/*
 * GX-VM - Memory opcode handlers
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package gxvm

import "math"

// Memory opcodes: LD, ST (spec §4.3). Both are polymorphic over the type
// flags: the low bit picks immediate- or register-held addressing, and the
// float bit picks a bit-preserving reinterpret over memory[addr] instead of
// a plain int32 load/store. Note this is address computation, not the usual
// arg1/arg2/third source convention — LD/ST carry the address in the third
// operand (I-type) or in R[arg2] (R-type), and the single register operand
// arg1 is always the value side.

func (vm *VM) memAddress(d Decoded) int32 {
	if d.IsImmediate {
		return d.Imm
	}
	return vm.R[d.Arg2]
}

func (vm *VM) opLD(d Decoded) (Status, error) {
	addr := vm.memAddress(d)
	if addr < 0 || int(addr) >= MemSize {
		return StatusError, newFault(vm.PC-1, MemoryOutOfRange, "load address out of range")
	}
	word := vm.Memory[addr]
	if d.IsFloat {
		vm.WriteF(d.Arg1, math.Float32frombits(word))
	} else {
		vm.WriteR(d.Arg1, int32(word))
	}
	return StatusContinue, nil
}

func (vm *VM) opST(d Decoded) (Status, error) {
	addr := vm.memAddress(d)
	if addr < 0 || int(addr) >= MemSize {
		return StatusError, newFault(vm.PC-1, MemoryOutOfRange, "store address out of range")
	}
	if d.IsFloat {
		vm.Memory[addr] = math.Float32bits(vm.F[d.Arg1])
	} else {
		vm.Memory[addr] = uint32(vm.R[d.Arg1])
	}
	return StatusContinue, nil
}
