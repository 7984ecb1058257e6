/*
 * GX-VM - Graph-iteration opcode handlers
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

// Graph-iteration opcodes: NITER, NNEXT, EITER, ENEXT, HASE, DEG (spec §4.3).
// These are the VM's affordance for walking the read-only CSR graph a row
// (NITER/NNEXT) or an edge (EITER/ENEXT) at a time, plus the inverted-
// polarity edge-presence test HASE and the degree lookup DEG.

func (vm *VM) opNITER(d Decoded) (Status, error) {
	k := d.Arg1
	if int(k) >= NumIterCursor {
		return StatusError, newFault(vm.PC-1, IteratorOutOfRange, "niter slot out of range")
	}
	vm.NIter[k] = 0
	return StatusContinue, nil
}

// opNNEXT advances niter[k] through R_NODE's neighbours. On success it loads
// R_NBR/R_VAL, increments the cursor, and clears FLAGS. On exhaustion it
// sets FLAGS.Z and leaves the cursor unchanged.
func (vm *VM) opNNEXT(d Decoded) (Status, error) {
	k := d.Arg1
	if int(k) >= NumIterCursor {
		return StatusError, newFault(vm.PC-1, IteratorOutOfRange, "niter slot out of range")
	}
	node := uint32(vm.R[RNode])
	start, end := vm.Graph.RowIndex[node], vm.Graph.RowIndex[node+1]
	idx := start + vm.NIter[k]
	if idx >= end {
		vm.Flags = FlagZ
		return StatusContinue, nil
	}
	vm.WriteR(RNbr, int32(vm.Graph.ColIndex[idx]))
	vm.WriteR(RVal, int32(vm.Graph.Values[idx]))
	vm.NIter[k]++
	vm.Flags = 0
	return StatusContinue, nil
}

func (vm *VM) opEITER(_ Decoded) (Status, error) {
	vm.EIter = 0
	vm.WriteR(RNode, 0)
	return StatusContinue, nil
}

// opENEXT yields the next (source, dest, weight) tuple of the global edge
// scan. If the current row is exhausted it advances R_NODE and resets eiter
// once, reading the new row on this same call; consecutive empty rows need
// one ENEXT per transition (spec §9 open question). Past the last node it
// sets FLAGS.Z.
func (vm *VM) opENEXT(_ Decoded) (Status, error) {
	node := uint32(vm.R[RNode])
	if node >= vm.Graph.N {
		vm.Flags = FlagZ
		return StatusContinue, nil
	}
	start, end := vm.Graph.RowIndex[node], vm.Graph.RowIndex[node+1]
	if start+vm.EIter >= end {
		node++
		vm.WriteR(RNode, int32(node))
		vm.EIter = 0
		if node >= vm.Graph.N {
			vm.Flags = FlagZ
			return StatusContinue, nil
		}
		start, end = vm.Graph.RowIndex[node], vm.Graph.RowIndex[node+1]
		if start+vm.EIter >= end {
			vm.Flags = FlagZ
			return StatusContinue, nil
		}
	}
	idx := start + vm.EIter
	vm.WriteR(RNbr, int32(vm.Graph.ColIndex[idx]))
	vm.WriteR(RVal, int32(vm.Graph.Values[idx]))
	vm.EIter++
	vm.Flags = 0
	return StatusContinue, nil
}

// opHASE tests for edge (R_NODE, R_NBR). FLAGS.Z means "no edge" — the
// inverted polarity spec §9 calls out: assemblers follow HASE with BZ to
// branch on absence, BNZ to branch on presence.
func (vm *VM) opHASE(_ Decoded) (Status, error) {
	u := uint32(vm.R[RNode])
	v := uint32(vm.R[RNbr])
	vm.Flags = FlagZ
	if vm.Graph.HasEdge(u, v) {
		vm.Flags = 0
	}
	return StatusContinue, nil
}

func (vm *VM) opDEG(d Decoded) (Status, error) {
	node := uint32(vm.R[d.Arg1])
	vm.WriteR(RVal, int32(vm.Graph.Degree(node)))
	return StatusContinue, nil
}
