package gxvm

import (
	"github.com/austinhamilton1/gx-vm/csrgraph"
	"github.com/austinhamilton1/gx-vm/frontier"
)

// g6Graph is the 6-node undirected graph used throughout the pipeline
// scenario tests (spec §8), taken from the original GraphX shortestpath
// baseline:
//
//	0: 1, 2, 5
//	1: 0, 2, 3
//	2: 0, 1, 3, 5
//	3: 1, 2, 4
//	4: 3, 5
//	5: 0, 2, 4
func g6Graph() *csrgraph.Graph {
	rowIndex := []uint32{0, 3, 6, 10, 13, 15, 18}
	colIndex := []uint32{
		1, 2, 5,
		0, 2, 3,
		0, 1, 3, 5,
		1, 2, 4,
		3, 5,
		0, 2, 4,
	}
	values := make([]uint32, len(colIndex))
	for i := range values {
		values[i] = 1
	}
	return csrgraph.New(6, rowIndex, colIndex, values)
}

// sssp18Graph is the 6-node weighted digraph from the original GraphX sssp
// baseline.
func sssp18Graph() *csrgraph.Graph {
	type edge struct{ u, v, w uint32 }
	edges := []edge{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14},
		{1, 0, 7}, {1, 2, 10}, {1, 3, 15},
		{2, 0, 9}, {2, 1, 10}, {2, 3, 11}, {2, 5, 2},
		{3, 1, 15}, {3, 2, 11}, {3, 4, 6},
		{4, 3, 6}, {4, 5, 9},
		{5, 0, 14}, {5, 2, 2}, {5, 4, 9},
	}
	const n = 6
	degree := make([]uint32, n)
	for _, e := range edges {
		degree[e.u]++
	}
	rowIndex := make([]uint32, n+1)
	for u := uint32(0); u < n; u++ {
		rowIndex[u+1] = rowIndex[u] + degree[u]
	}
	colIndex := make([]uint32, len(edges))
	values := make([]uint32, len(edges))
	cursor := append([]uint32(nil), rowIndex[:n]...)
	for _, e := range edges {
		colIndex[cursor[e.u]] = e.v
		values[cursor[e.u]] = e.w
		cursor[e.u]++
	}
	return csrgraph.New(n, rowIndex, colIndex, values)
}

func newTestVM(g *csrgraph.Graph) *VM {
	return New(g, frontier.New(), frontier.New())
}
