/*
 * GX-VM - Ring-buffer frontier queue
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

// Package frontier implements the ring-buffer FIFO used to drive
// level-synchronous graph traversal on the VM (spec §4.2). Two instances
// form a dual-frontier pair: one is drained while the other is filled for
// the next level.
package frontier

import "errors"

// Capacity is the fixed ring-buffer size. Must be a power of two: the mask
// optimization in push/pop depends on it.
const Capacity = 1024

const capMask = Capacity - 1

// Type selects a frontier's backend. Only TypeFIFO is implemented; the
// others are declared so Init can reject them uniformly with ErrUnsupported.
type Type int

const (
	TypeFIFO Type = iota
	TypePriorityQueue
	TypeDisjointSet
)

var (
	// ErrFull is returned by Push when the ring buffer has no free slots.
	ErrFull = errors.New("frontier: full")
	// ErrEmpty is returned by Pop when the ring buffer has no items.
	ErrEmpty = errors.New("frontier: empty")
	// ErrUnsupported is returned by Init for any backend other than TypeFIFO.
	ErrUnsupported = errors.New("frontier: unsupported backend")
)

// Frontier is a FIFO of node IDs backed by a power-of-two ring buffer.
// front is the pop cursor, back is the push cursor; both increase
// monotonically so that current size is always back-front, independent of
// wraparound, per spec §3.
type Frontier struct {
	backend Type
	data    [Capacity]int32
	front   uint64
	back    uint64
}

// New returns a Frontier initialized to the FIFO backend, the only backend
// GX-VM currently defines.
func New() *Frontier {
	f := &Frontier{}
	_ = f.Init(TypeFIFO)
	return f
}

// Init resets the cursors and selects a backend. Only TypeFIFO is defined;
// any other type reports ErrUnsupported and leaves the frontier untouched.
func (f *Frontier) Init(backend Type) error {
	if backend != TypeFIFO {
		return ErrUnsupported
	}
	f.backend = backend
	f.front = 0
	f.back = 0
	return nil
}

// Backend reports the frontier's current backend type.
func (f *Frontier) Backend() Type {
	return f.backend
}

// Size returns the current number of queued nodes.
func (f *Frontier) Size() uint64 {
	return f.back - f.front
}

// Empty reports whether the frontier has no queued nodes.
func (f *Frontier) Empty() bool {
	return f.front == f.back
}

// Full reports whether the frontier has no free slots.
func (f *Frontier) Full() bool {
	return f.back-f.front == Capacity
}

// Push appends node at the back of the queue. Returns ErrFull if the
// buffer is already at capacity.
func (f *Frontier) Push(node int32) error {
	if f.Full() {
		return ErrFull
	}
	f.data[f.back&capMask] = node
	f.back++
	return nil
}

// Pop removes and returns the node at the front of the queue. Returns
// ErrEmpty if the buffer is empty.
func (f *Frontier) Pop() (int32, error) {
	if f.Empty() {
		return 0, ErrEmpty
	}
	node := f.data[f.front&capMask]
	f.front++
	return node, nil
}
