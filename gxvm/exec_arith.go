/*
 * GX-VM - Arithmetic and logic opcode handlers
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

// Arithmetic & logic opcodes: ADD, SUB, MUL, DIV, CMP, MOV, MOVC. All but
// MOVC are polymorphic over the type-flags byte per the spec §4.3 table:
// destination is always file[arg1], the first source is file[arg2], and
// the third operand is either a same-file register (R-type) or an
// immediate (I-type, bit-reinterpreted as f32 in the float+immediate case).

func (vm *VM) intOperands(d Decoded) (src, third int32) {
	src = vm.R[d.Arg2]
	if d.IsImmediate {
		third = d.Imm
	} else {
		third = vm.R[d.Arg3Reg]
	}
	return src, third
}

func (vm *VM) floatOperands(d Decoded) (src, third float32) {
	src = vm.F[d.Arg2]
	if d.IsImmediate {
		third = d.ImmF
	} else {
		third = vm.F[d.Arg3Reg]
	}
	return src, third
}

func (vm *VM) opADD(d Decoded) (Status, error) {
	if d.IsFloat {
		src, third := vm.floatOperands(d)
		vm.WriteF(d.Arg1, src+third)
	} else {
		src, third := vm.intOperands(d)
		vm.WriteR(d.Arg1, src+third)
	}
	return StatusContinue, nil
}

func (vm *VM) opSUB(d Decoded) (Status, error) {
	if d.IsFloat {
		src, third := vm.floatOperands(d)
		vm.WriteF(d.Arg1, src-third)
	} else {
		src, third := vm.intOperands(d)
		vm.WriteR(d.Arg1, src-third)
	}
	return StatusContinue, nil
}

func (vm *VM) opMUL(d Decoded) (Status, error) {
	if d.IsFloat {
		src, third := vm.floatOperands(d)
		vm.WriteF(d.Arg1, src*third)
	} else {
		src, third := vm.intOperands(d)
		vm.WriteR(d.Arg1, src*third)
	}
	return StatusContinue, nil
}

// opDIV divides src by third. Integer division by zero is fatal; float
// division follows ordinary IEEE-754 semantics (may yield ±Inf or NaN).
func (vm *VM) opDIV(d Decoded) (Status, error) {
	if d.IsFloat {
		src, third := vm.floatOperands(d)
		vm.WriteF(d.Arg1, src/third)
		return StatusContinue, nil
	}
	src, third := vm.intOperands(d)
	if third == 0 {
		return StatusError, newFault(vm.PC-1, DivideByZero, "integer division by zero")
	}
	vm.WriteR(d.Arg1, src/third)
	return StatusContinue, nil
}

// opCMP computes src-third and sets exactly one of Z/N/P for finite
// operands. NaN float comparisons clear all three flags.
func (vm *VM) opCMP(d Decoded) (Status, error) {
	vm.Flags = 0
	if d.IsFloat {
		src, third := vm.floatOperands(d)
		diff := src - third
		switch {
		case math.IsNaN(float64(diff)):
		case diff == 0:
			vm.Flags = FlagZ
		case diff < 0:
			vm.Flags = FlagN
		default:
			vm.Flags = FlagP
		}
		return StatusContinue, nil
	}
	src, third := vm.intOperands(d)
	diff := src - third
	switch {
	case diff == 0:
		vm.Flags = FlagZ
	case diff < 0:
		vm.Flags = FlagN
	default:
		vm.Flags = FlagP
	}
	return StatusContinue, nil
}

// opMOV copies the third operand (register or immediate — the "second
// source") to the destination, ignoring arg2 entirely.
func (vm *VM) opMOV(d Decoded) (Status, error) {
	if d.IsFloat {
		v := d.ImmF
		if !d.IsImmediate {
			v = vm.F[d.Arg3Reg]
		}
		vm.WriteF(d.Arg1, v)
	} else {
		v := d.Imm
		if !d.IsImmediate {
			v = vm.R[d.Arg3Reg]
		}
		vm.WriteR(d.Arg1, v)
	}
	return StatusContinue, nil
}

// opMOVC casts across register files. When the flag's float bit is clear
// ("integer form") it writes F[arg1] <- (f32) R[arg2]; when set ("float
// form") it writes R[arg1] <- (i32) F[arg2] truncated toward zero.
func (vm *VM) opMOVC(d Decoded) (Status, error) {
	if d.IsFloat {
		vm.WriteR(d.Arg1, int32(vm.F[d.Arg2]))
	} else {
		vm.WriteF(d.Arg1, float32(vm.R[d.Arg2]))
	}
	return StatusContinue, nil
}
