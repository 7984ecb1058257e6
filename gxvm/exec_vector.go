/*
 * GX-VM - Vector opcode handlers
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

// Vector opcodes: VADD, VSUB, VMUL, VDIV, VLD, VST, VSET, VSUM (spec §4.3).
// The four lanes of VR/VF are always operated on as a unit; there is no
// partial-lane addressing. Arithmetic forms always take a register third
// operand (there is no meaningful vector-immediate arithmetic); VLD/VST
// and VSET reuse the same addressing and "second source" conventions as
// the scalar memory and MOV opcodes respectively.

func (vm *VM) opVADD(d Decoded) (Status, error) {
	if d.IsFloat {
		a, b := vm.VF[d.Arg2], vm.VF[d.Arg3Reg]
		var out [VecLanes]float32
		for i := range out {
			out[i] = a[i] + b[i]
		}
		vm.VF[d.Arg1] = out
	} else {
		a, b := vm.VR[d.Arg2], vm.VR[d.Arg3Reg]
		var out [VecLanes]int32
		for i := range out {
			out[i] = a[i] + b[i]
		}
		vm.VR[d.Arg1] = out
	}
	return StatusContinue, nil
}

func (vm *VM) opVSUB(d Decoded) (Status, error) {
	if d.IsFloat {
		a, b := vm.VF[d.Arg2], vm.VF[d.Arg3Reg]
		var out [VecLanes]float32
		for i := range out {
			out[i] = a[i] - b[i]
		}
		vm.VF[d.Arg1] = out
	} else {
		a, b := vm.VR[d.Arg2], vm.VR[d.Arg3Reg]
		var out [VecLanes]int32
		for i := range out {
			out[i] = a[i] - b[i]
		}
		vm.VR[d.Arg1] = out
	}
	return StatusContinue, nil
}

func (vm *VM) opVMUL(d Decoded) (Status, error) {
	if d.IsFloat {
		a, b := vm.VF[d.Arg2], vm.VF[d.Arg3Reg]
		var out [VecLanes]float32
		for i := range out {
			out[i] = a[i] * b[i]
		}
		vm.VF[d.Arg1] = out
	} else {
		a, b := vm.VR[d.Arg2], vm.VR[d.Arg3Reg]
		var out [VecLanes]int32
		for i := range out {
			out[i] = a[i] * b[i]
		}
		vm.VR[d.Arg1] = out
	}
	return StatusContinue, nil
}

// opVDIV divides lane-wise. An integer lane divisor of zero is fatal, same
// as the scalar DIV opcode.
func (vm *VM) opVDIV(d Decoded) (Status, error) {
	if d.IsFloat {
		a, b := vm.VF[d.Arg2], vm.VF[d.Arg3Reg]
		var out [VecLanes]float32
		for i := range out {
			out[i] = a[i] / b[i]
		}
		vm.VF[d.Arg1] = out
		return StatusContinue, nil
	}
	a, b := vm.VR[d.Arg2], vm.VR[d.Arg3Reg]
	var out [VecLanes]int32
	for i := range out {
		if b[i] == 0 {
			return StatusError, newFault(vm.PC-1, DivideByZero, "integer vector division by zero")
		}
		out[i] = a[i] / b[i]
	}
	vm.VR[d.Arg1] = out
	return StatusContinue, nil
}

// opVLD loads 4 contiguous memory words into VR[arg1]/VF[arg1], address per
// the same I-type/R-type convention as LD.
func (vm *VM) opVLD(d Decoded) (Status, error) {
	addr := vm.memAddress(d)
	if addr < 0 || int(addr)+VecLanes > MemSize {
		return StatusError, newFault(vm.PC-1, MemoryOutOfRange, "vector load out of range")
	}
	base := int(addr)
	if d.IsFloat {
		var out [VecLanes]float32
		for i := 0; i < VecLanes; i++ {
			out[i] = math.Float32frombits(vm.Memory[base+i])
		}
		vm.VF[d.Arg1] = out
	} else {
		var out [VecLanes]int32
		for i := 0; i < VecLanes; i++ {
			out[i] = int32(vm.Memory[base+i])
		}
		vm.VR[d.Arg1] = out
	}
	return StatusContinue, nil
}

func (vm *VM) opVST(d Decoded) (Status, error) {
	addr := vm.memAddress(d)
	if addr < 0 || int(addr)+VecLanes > MemSize {
		return StatusError, newFault(vm.PC-1, MemoryOutOfRange, "vector store out of range")
	}
	base := int(addr)
	if d.IsFloat {
		v := vm.VF[d.Arg1]
		for i := 0; i < VecLanes; i++ {
			vm.Memory[base+i] = math.Float32bits(v[i])
		}
	} else {
		v := vm.VR[d.Arg1]
		for i := 0; i < VecLanes; i++ {
			vm.Memory[base+i] = uint32(v[i])
		}
	}
	return StatusContinue, nil
}

// opVSET broadcasts a scalar into every lane of VR[arg1]/VF[arg1]. Like MOV,
// the scalar source is the third operand (register or immediate); arg2 is
// unused.
func (vm *VM) opVSET(d Decoded) (Status, error) {
	if d.IsFloat {
		v := d.ImmF
		if !d.IsImmediate {
			v = vm.F[d.Arg3Reg]
		}
		var out [VecLanes]float32
		for i := range out {
			out[i] = v
		}
		vm.VF[d.Arg1] = out
	} else {
		v := d.Imm
		if !d.IsImmediate {
			v = vm.R[d.Arg3Reg]
		}
		var out [VecLanes]int32
		for i := range out {
			out[i] = v
		}
		vm.VR[d.Arg1] = out
	}
	return StatusContinue, nil
}

// opVSUM accumulates Σ VR[arg2][i] (or VF) into the scalar destination —
// adds to, rather than replaces, the existing value (spec §9: callers that
// want a pure sum must zero the accumulator first).
func (vm *VM) opVSUM(d Decoded) (Status, error) {
	if d.IsFloat {
		var sum float32
		for _, lane := range vm.VF[d.Arg2] {
			sum += lane
		}
		vm.WriteF(d.Arg1, vm.F[d.Arg1]+sum)
	} else {
		var sum int32
		for _, lane := range vm.VR[d.Arg2] {
			sum += lane
		}
		vm.WriteR(d.Arg1, vm.R[d.Arg1]+sum)
	}
	return StatusContinue, nil
}
