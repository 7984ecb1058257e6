/*
 * GX-VM - Fault and error-kind definitions for the VM core
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

import "fmt"

// Kind classifies the fatal error conditions the pipeline can produce
// (spec §7). Any Kind terminates the run with StatusError.
type Kind int

const (
	// Unsupported covers unknown opcodes, undefined frontier backends, and
	// reserved flag combinations.
	Unsupported Kind = iota
	// BranchOutOfRange is a control-flow target >= ProgSize.
	BranchOutOfRange
	// MemoryOutOfRange is a load/store address >= MemSize or negative.
	MemoryOutOfRange
	// IteratorOutOfRange is a neighbour-iterator slot >= NumIterCursor.
	IteratorOutOfRange
	// FrontierFull is a push to a full ring buffer.
	FrontierFull
	// FrontierEmpty is a pop from an empty ring buffer.
	FrontierEmpty
	// DivideByZero is an integer division with a zero divisor.
	DivideByZero
)

func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "Unsupported"
	case BranchOutOfRange:
		return "BranchOutOfRange"
	case MemoryOutOfRange:
		return "MemoryOutOfRange"
	case IteratorOutOfRange:
		return "IteratorOutOfRange"
	case FrontierFull:
		return "FrontierFull"
	case FrontierEmpty:
		return "FrontierEmpty"
	case DivideByZero:
		return "DivideByZero"
	default:
		return "Unknown"
	}
}

// Fault is the error a faulting opcode handler returns. The pipeline
// preserves PC at the faulting instruction (Step has already advanced vm.PC
// past it, so handlers record vm.PC-1) rather than panicking.
type Fault struct {
	Kind Kind
	PC   uint32
	Msg  string
}

func (f *Fault) Error() string {
	if f.Msg == "" {
		return fmt.Sprintf("gxvm: %s at PC=%d", f.Kind, f.PC)
	}
	return fmt.Sprintf("gxvm: %s at PC=%d: %s", f.Kind, f.PC, f.Msg)
}

func newFault(pc uint32, kind Kind, msg string) *Fault {
	return &Fault{Kind: kind, PC: pc, Msg: msg}
}
