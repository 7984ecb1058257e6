/*
 * GX-VM - Synchronisation opcode handlers
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

// Synchronisation opcodes: PARALLEL, BARRIER, LOCK, UNLOCK (spec §4.3).
// Reserved for a future multicore hardware target; on this single-core VM
// they are accepted and counted by the pipeline clock but otherwise no-ops.
// They must never fail and must never mutate observable state.

func (vm *VM) opPARALLEL(_ Decoded) (Status, error) {
	return StatusContinue, nil
}

func (vm *VM) opBARRIER(_ Decoded) (Status, error) {
	return StatusContinue, nil
}

func (vm *VM) opLOCK(_ Decoded) (Status, error) {
	return StatusContinue, nil
}

func (vm *VM) opUNLOCK(_ Decoded) (Status, error) {
	return StatusContinue, nil
}
