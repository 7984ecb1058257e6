/*
 * GX-VM - Compressed sparse row graph
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

// Package csrgraph implements the read-only compressed-sparse-row graph
// that a GX-VM program traverses. The graph is immutable once loaded: no
// exported function ever mutates RowIndex, ColIndex, or Values.
package csrgraph

// Graph is a compressed-sparse-row adjacency structure. RowIndex has N+1
// entries; the neighbors of node u live in ColIndex[RowIndex[u]:RowIndex[u+1]],
// sorted ascending, with Values holding the parallel per-edge weight word.
//
// The sorted-row invariant is load-bearing: HasEdge and Weight binary search
// it rather than scan linearly.
type Graph struct {
	N        uint32   // node count
	RowIndex []uint32 // length N+1, row_index[0]=0, row_index[N]=len(ColIndex)
	ColIndex []uint32 // destination node per edge, sorted ascending within a row
	Values   []uint32 // edge weight per edge, parallel to ColIndex; raw word
}

// New builds a Graph from loader-supplied slices. It does not copy or
// validate the sortedness invariant — that is the loader's contract (spec §6).
func New(n uint32, rowIndex, colIndex, values []uint32) *Graph {
	return &Graph{N: n, RowIndex: rowIndex, ColIndex: colIndex, Values: values}
}

// Degree returns the out-degree of u. Unchecked if u >= N; the caller's job.
func (g *Graph) Degree(u uint32) uint32 {
	return g.RowIndex[u+1] - g.RowIndex[u]
}

// Neighbors returns a no-copy slice view of u's destination nodes.
func (g *Graph) Neighbors(u uint32) []uint32 {
	return g.ColIndex[g.RowIndex[u]:g.RowIndex[u+1]]
}

// findEdge binary searches u's row for v and returns the edge index, or
// -1 if v is not a neighbor of u.
func (g *Graph) findEdge(u, v uint32) int {
	lo := int(g.RowIndex[u])
	hi := int(g.RowIndex[u+1]) - 1
	for lo <= hi {
		mid := (lo + hi) / 2
		val := g.ColIndex[mid]
		switch {
		case val == v:
			return mid
		case val < v:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// HasEdge reports whether v appears in u's neighbor slice.
func (g *Graph) HasEdge(u, v uint32) bool {
	return g.findEdge(u, v) >= 0
}

// Weight returns the raw weight word of edge (u, v), or the zero sentinel
// if the edge does not exist. Callers that may have legitimate zero-weight
// edges must use HasEdge rather than inferring absence from a zero weight.
func (g *Graph) Weight(u, v uint32) uint32 {
	idx := g.findEdge(u, v)
	if idx < 0 {
		return 0
	}
	return g.Values[idx]
}
