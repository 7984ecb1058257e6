/*
 * GX-VM - Frontier opcode handlers
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

import (
	"errors"

	"github.com/austinhamilton1/gx-vm/frontier"
)

// Frontier opcodes: FPUSH, FPOP, FEMPTY, FSWAP, FFILL (spec §4.3). These
// drive the dual-frontier level-synchronous traversal pattern: producers
// write the next level into NextFrontier while the consumer drains the
// current Frontier, and FSWAP hands the built level over at the end of a
// round.

func (vm *VM) opFPUSH(d Decoded) (Status, error) {
	if err := vm.NextFrontier.Push(vm.R[d.Arg1]); err != nil {
		if errors.Is(err, frontier.ErrFull) {
			return StatusError, newFault(vm.PC-1, FrontierFull, "frontier push: full")
		}
		return StatusError, newFault(vm.PC-1, Unsupported, err.Error())
	}
	return StatusContinue, nil
}

func (vm *VM) opFPOP(d Decoded) (Status, error) {
	v, err := vm.Frontier.Pop()
	if err != nil {
		if errors.Is(err, frontier.ErrEmpty) {
			return StatusError, newFault(vm.PC-1, FrontierEmpty, "frontier pop: empty")
		}
		return StatusError, newFault(vm.PC-1, Unsupported, err.Error())
	}
	vm.WriteR(d.Arg1, v)
	return StatusContinue, nil
}

func (vm *VM) opFEMPTY(_ Decoded) (Status, error) {
	vm.Flags = 0
	if vm.Frontier.Empty() {
		vm.Flags = FlagZ
	}
	return StatusContinue, nil
}

// opFSWAP swaps Frontier and NextFrontier, then resets the new NextFrontier
// so each level cleanly starts from empty (spec §9 open-question decision).
func (vm *VM) opFSWAP(_ Decoded) (Status, error) {
	vm.Frontier, vm.NextFrontier = vm.NextFrontier, vm.Frontier
	backend := vm.NextFrontier.Backend()
	if err := vm.NextFrontier.Init(backend); err != nil {
		return StatusError, newFault(vm.PC-1, Unsupported, err.Error())
	}
	return StatusContinue, nil
}

// opFFILL pushes every node 0..n onto the current frontier.
func (vm *VM) opFFILL(_ Decoded) (Status, error) {
	for i := uint32(0); i < vm.Graph.N; i++ {
		if err := vm.Frontier.Push(int32(i)); err != nil {
			if errors.Is(err, frontier.ErrFull) {
				return StatusError, newFault(vm.PC-1, FrontierFull, "frontier fill: full")
			}
			return StatusError, newFault(vm.PC-1, Unsupported, err.Error())
		}
	}
	return StatusContinue, nil
}
