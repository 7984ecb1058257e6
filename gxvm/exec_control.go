/*
 * GX-VM - Control-flow opcode handlers
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

// Control-flow opcodes: HALT, JMP, and the conditional branches (spec §4.3).
// Branch targets are always read from the I-type immediate operand and are
// bounds-checked against ProgSize; a negative or out-of-range target is
// BranchOutOfRange, never bit-cast to unsigned (spec §9 open question).

func (vm *VM) opHALT(_ Decoded) (Status, error) {
	return StatusHalt, nil
}

func (vm *VM) branchTo(target int32) (Status, error) {
	if target < 0 || target >= ProgSize {
		return StatusError, newFault(vm.PC-1, BranchOutOfRange, "branch target out of range")
	}
	vm.PC = uint32(target)
	return StatusContinue, nil
}

func (vm *VM) opJMP(d Decoded) (Status, error) {
	return vm.branchTo(d.Imm)
}

func (vm *VM) opBZ(d Decoded) (Status, error) {
	if vm.Flags&FlagZ != 0 {
		return vm.branchTo(d.Imm)
	}
	return StatusContinue, nil
}

func (vm *VM) opBNZ(d Decoded) (Status, error) {
	if vm.Flags&FlagZ == 0 {
		return vm.branchTo(d.Imm)
	}
	return StatusContinue, nil
}

func (vm *VM) opBLT(d Decoded) (Status, error) {
	if vm.Flags&FlagN != 0 {
		return vm.branchTo(d.Imm)
	}
	return StatusContinue, nil
}

func (vm *VM) opBGE(d Decoded) (Status, error) {
	if vm.Flags&(FlagP|FlagZ) != 0 {
		return vm.branchTo(d.Imm)
	}
	return StatusContinue, nil
}
