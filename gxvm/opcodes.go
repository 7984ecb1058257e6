/*
 * GX-VM - Opcode enumeration and mnemonics
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

// Opcode is the 8-bit operation code occupying bits 63:56 of an
// instruction word (spec §4.3). The dense codepoint space is ~35 values
// wide; everything else decodes as Unsupported.
type Opcode uint8

const (
	OpHALT Opcode = iota

	// Control flow
	OpJMP
	OpBZ
	OpBNZ
	OpBLT
	OpBGE

	// Graph iteration
	OpNITER
	OpNNEXT
	OpEITER
	OpENEXT
	OpHASE
	OpDEG

	// Polymorphic arithmetic & logic
	OpADD
	OpSUB
	OpMUL
	OpDIV
	OpCMP
	OpMOV
	OpMOVC

	// Memory
	OpLD
	OpST

	// Vector
	OpVADD
	OpVSUB
	OpVMUL
	OpVDIV
	OpVLD
	OpVST
	OpVSET
	OpVSUM

	// Frontier
	OpFPUSH
	OpFPOP
	OpFEMPTY
	OpFSWAP
	OpFFILL

	// Synchronisation (no-ops on this single-core target)
	OpPARALLEL
	OpBARRIER
	OpLOCK
	OpUNLOCK

	numOpcodes
)

var mnemonics = [numOpcodes]string{
	OpHALT:     "HALT",
	OpJMP:      "JMP",
	OpBZ:       "BZ",
	OpBNZ:      "BNZ",
	OpBLT:      "BLT",
	OpBGE:      "BGE",
	OpNITER:    "NITER",
	OpNNEXT:    "NNEXT",
	OpEITER:    "EITER",
	OpENEXT:    "ENEXT",
	OpHASE:     "HASE",
	OpDEG:      "DEG",
	OpADD:      "ADD",
	OpSUB:      "SUB",
	OpMUL:      "MUL",
	OpDIV:      "DIV",
	OpCMP:      "CMP",
	OpMOV:      "MOV",
	OpMOVC:     "MOVC",
	OpLD:       "LD",
	OpST:       "ST",
	OpVADD:     "VADD",
	OpVSUB:     "VSUB",
	OpVMUL:     "VMUL",
	OpVDIV:     "VDIV",
	OpVLD:      "VLD",
	OpVST:      "VST",
	OpVSET:     "VSET",
	OpVSUM:     "VSUM",
	OpFPUSH:    "FPUSH",
	OpFPOP:     "FPOP",
	OpFEMPTY:   "FEMPTY",
	OpFSWAP:    "FSWAP",
	OpFFILL:    "FFILL",
	OpPARALLEL: "PARALLEL",
	OpBARRIER:  "BARRIER",
	OpLOCK:     "LOCK",
	OpUNLOCK:   "UNLOCK",
}

// Mnemonic returns the assembly mnemonic for op, or "???" for a codepoint
// with no handler installed.
func (op Opcode) Mnemonic() string {
	if int(op) < len(mnemonics) && mnemonics[op] != "" {
		return mnemonics[op]
	}
	return "???"
}
