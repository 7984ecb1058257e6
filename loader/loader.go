/*
 * GX-VM - Program binary loader
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

// Package loader reads the packed GX-VM program binary (spec §6): a header
// of five little-endian section lengths, followed by the code section, the
// CSR graph sections, and the initial memory image.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/austinhamilton1/gx-vm/csrgraph"
	"github.com/austinhamilton1/gx-vm/gxvm"
)

// header mirrors the five u32 section lengths at the front of the binary.
type header struct {
	CodeLen      uint32
	RowIndexLen  uint32
	ColIndexLen  uint32
	ValuesLen    uint32
	MemLen       uint32
}

// Image is a fully parsed program binary: the code section, the read-only
// graph, and the initial memory contents. Neither Program nor Memory is
// padded to the VM's fixed array sizes; Install does that while copying in.
type Image struct {
	Program []uint64
	Graph   *csrgraph.Graph
	Memory  []uint32
}

// Load parses a program binary from r per the §6 layout. It validates
// section-size bounds and the CSR sortedness precondition before returning.
func Load(r io.Reader) (*Image, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("loader: reading header: %w", err)
	}
	if hdr.CodeLen > gxvm.ProgSize {
		return nil, fmt.Errorf("loader: code_len %d exceeds PROG_SIZE %d", hdr.CodeLen, gxvm.ProgSize)
	}
	if hdr.MemLen > gxvm.MemSize {
		return nil, fmt.Errorf("loader: mem_len %d exceeds MEM_SIZE %d", hdr.MemLen, gxvm.MemSize)
	}
	if hdr.RowIndexLen == 0 {
		return nil, fmt.Errorf("loader: row_index_len must be at least 1 (node count + 1)")
	}

	program := make([]uint64, hdr.CodeLen)
	if err := binary.Read(r, binary.LittleEndian, program); err != nil {
		return nil, fmt.Errorf("loader: reading code section: %w", err)
	}

	rowIndex := make([]uint32, hdr.RowIndexLen)
	if err := binary.Read(r, binary.LittleEndian, rowIndex); err != nil {
		return nil, fmt.Errorf("loader: reading row_index: %w", err)
	}
	colIndex := make([]uint32, hdr.ColIndexLen)
	if err := binary.Read(r, binary.LittleEndian, colIndex); err != nil {
		return nil, fmt.Errorf("loader: reading col_index: %w", err)
	}
	values := make([]uint32, hdr.ValuesLen)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("loader: reading values: %w", err)
	}

	n := hdr.RowIndexLen - 1
	if rowIndex[n] != hdr.ColIndexLen {
		return nil, fmt.Errorf("loader: row_index[%d]=%d does not match col_index_len=%d", n, rowIndex[n], hdr.ColIndexLen)
	}
	if hdr.ColIndexLen != hdr.ValuesLen {
		return nil, fmt.Errorf("loader: col_index_len=%d != values_len=%d", hdr.ColIndexLen, hdr.ValuesLen)
	}
	for u := uint32(0); u < n; u++ {
		row := colIndex[rowIndex[u]:rowIndex[u+1]]
		for i := 1; i < len(row); i++ {
			if row[i-1] >= row[i] {
				return nil, fmt.Errorf("loader: col_index row %d is not strictly sorted ascending at position %d", u, i)
			}
		}
	}

	memory := make([]uint32, hdr.MemLen)
	if hdr.MemLen > 0 {
		if err := binary.Read(r, binary.LittleEndian, memory); err != nil {
			return nil, fmt.Errorf("loader: reading memory image: %w", err)
		}
	}

	return &Image{
		Program: program,
		Graph:   csrgraph.New(n, rowIndex, colIndex, values),
		Memory:  memory,
	}, nil
}

// Install copies the image's program and memory into vm's fixed-size arrays
// and points vm at the image's graph. It does not reset any other VM state.
func (img *Image) Install(vm *gxvm.VM) {
	copy(vm.Program[:], img.Program)
	copy(vm.Memory[:], img.Memory)
	vm.Graph = img.Graph
}
