/*
 * GX-VM - VM register files and top-level state
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

// Package gxvm implements the GX-VM instruction-set simulator core: the
// register files, the binary instruction decoder, per-opcode execution, and
// the fetch/decode/execute pipeline that drives them (spec §2-§4).
package gxvm

import (
	"github.com/austinhamilton1/gx-vm/csrgraph"
	"github.com/austinhamilton1/gx-vm/frontier"
)

// Sizing constants (spec §3).
const (
	NumIntRegs    = 23    // R[0..=22]
	NumFloatRegs  = 18    // F[0..=17]
	NumVecRegs    = 16    // VR[0..15] / VF[0..15]
	VecLanes      = 4     // lanes per vector register
	MemSize       = 65536 // 32-bit words
	ProgSize      = 8192  // 64-bit instruction words
	NumIterCursor = 4     // niter[0..4)
)

// Named integer register slots. R[22] is reserved (unnamed, plain storage).
const (
	RNode = iota // current node cursor
	RNbr         // last neighbour
	RVal         // last edge weight
	RAcc         // accumulator
	RTmp1
	RTmp2
	RTmp3
	RTmp4
	RTmp5
	RTmp6
	RTmp7
	RTmp8
	RTmp9
	RTmp10
	RTmp11
	RTmp12
	RTmp13
	RTmp14
	RTmp15
	RTmp16
	RZero // always 0; writes discarded
	RCore // logical core id; always 0
)

// Named float register slots.
const (
	FAcc = iota
	FTmp1
	FTmp2
	FTmp3
	FTmp4
	FTmp5
	FTmp6
	FTmp7
	FTmp8
	FTmp9
	FTmp10
	FTmp11
	FTmp12
	FTmp13
	FTmp14
	FTmp15
	FTmp16
	FZero // always 0.0; writes discarded
)

// FLAGS bits (spec §3). At most one of Z/N/P is set by the CMP family;
// Z is reused by iteration/frontier-empty opcodes to mean "no more items".
const (
	FlagZ uint8 = 1 << iota
	FlagN
	FlagP
)

// Status is the outcome of one executed instruction, and of a full run.
type Status int

const (
	StatusContinue Status = iota
	StatusHalt
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusHalt:
		return "Halt"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// DebugHook is invoked after every executed instruction, if registered.
type DebugHook func(vm *VM)

// ExitHook is invoked once after the pipeline loop exits.
type ExitHook func(vm *VM, status Status)

// VM is one GX-VM instance: a fixed register file, RAM, program store, and
// non-owning references to a CSR graph and a pair of frontiers. A VM is not
// goroutine-safe; the single logical core model (spec §5) assumes one
// goroutine drives Run at a time. Many VMs may safely share one *Graph
// concurrently since the graph is read-only during a run.
type VM struct {
	PC    uint32
	Flags uint8

	R  [NumIntRegs]int32
	F  [NumFloatRegs]float32
	VR [NumVecRegs][VecLanes]int32
	VF [NumVecRegs][VecLanes]float32

	Memory  [MemSize]uint32
	Program [ProgSize]uint64

	NIter [NumIterCursor]uint32
	EIter uint32

	Clock uint64

	Graph        *csrgraph.Graph
	Frontier     *frontier.Frontier
	NextFrontier *frontier.Frontier

	DebugHook DebugHook
	ExitHook  ExitHook

	// Fault holds the error of the last faulting instruction, available
	// for diagnostics after a run ends with StatusError.
	Fault *Fault
}

// New returns a VM wired to the given graph and frontier pair. The VM does
// not take ownership of graph or frontiers; it only holds references for
// the duration of a run (spec §3, §5).
func New(graph *csrgraph.Graph, cur, next *frontier.Frontier) *VM {
	vm := &VM{Graph: graph, Frontier: cur, NextFrontier: next}
	vm.Reset()
	return vm
}

// Reset restores all VM-owned state to canonical zero and reinitializes
// the frontier backends. It does not touch the graph. Calling Reset
// repeatedly yields a bitwise-identical VM state each time.
func (vm *VM) Reset() {
	vm.PC = 0
	vm.Flags = 0
	vm.R = [NumIntRegs]int32{}
	vm.F = [NumFloatRegs]float32{}
	vm.VR = [NumVecRegs][VecLanes]int32{}
	vm.VF = [NumVecRegs][VecLanes]float32{}
	vm.Memory = [MemSize]uint32{}
	vm.Program = [ProgSize]uint64{}
	vm.NIter = [NumIterCursor]uint32{}
	vm.EIter = 0
	vm.Clock = 0
	vm.Fault = nil
	if vm.Frontier != nil {
		_ = vm.Frontier.Init(frontier.TypeFIFO)
	}
	if vm.NextFrontier != nil {
		_ = vm.NextFrontier.Init(frontier.TypeFIFO)
	}
}

// WriteR writes an integer register, discarding writes to RZero and RCore
// (spec §3, §9: hard-wired registers).
func (vm *VM) WriteR(idx uint8, val int32) {
	if int(idx) == RZero || int(idx) == RCore {
		return
	}
	vm.R[idx] = val
}

// WriteF writes a float register, discarding writes to FZero.
func (vm *VM) WriteF(idx uint8, val float32) {
	if int(idx) == FZero {
		return
	}
	vm.F[idx] = val
}
