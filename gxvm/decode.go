/*
 * GX-VM - Instruction word decoder
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
	"math"
)

// Low two bits of the type-flags byte (spec §4.3).
const (
	flagKindRInt   = 0b00
	flagKindIInt   = 0b01
	flagKindRFloat = 0b10
	flagKindIFloat = 0b11
)

// ErrUnsupportedOpcode is returned by Decode for any opcode with no
// installed handler. The pipeline turns it into a *Fault of Kind Unsupported
// carrying PC and this error's text.
var ErrUnsupportedOpcode = errors.New("gxvm: unsupported opcode")

// Decoded is the result of splitting a 64-bit instruction word into its
// opcode, type flags, register arguments, and third operand (spec §4.3):
//
//	63:56 opcode   55:48 flags   47:40 arg1   39:32 arg2   31:0 third operand
type Decoded struct {
	Opcode  Opcode
	Flags   uint8
	Arg1    uint8
	Arg2    uint8
	Arg3Reg uint8   // valid when the flag kind is R-type (int or float)
	Imm     int32   // raw third operand as a signed int, valid for any I-type
	ImmF    float32 // third operand bit-reinterpreted as float, valid when I-type float

	IsImmediate bool // flag low bit: third operand is an immediate, not a register
	IsFloat     bool // flag bit 1: operates on the float register files
}

// Decode splits word into its fields per the §4.3 layout. The three integer
// arg slots and the float arg slot start zeroed and only the one the flag
// kind selects is populated, except that I-type float fills both Imm and
// ImmF. An opcode with no installed handler yields
// ErrUnsupportedOpcode.
func Decode(word uint64) (Decoded, error) {
	opcode := Opcode(word >> 56)
	flags := uint8(word >> 48)
	arg1 := uint8(word >> 40)
	arg2 := uint8(word >> 32)
	third := uint32(word)

	d := Decoded{
		Opcode: opcode,
		Flags:  flags,
		Arg1:   arg1,
		Arg2:   arg2,
	}

	switch flags & 0x3 {
	case flagKindRInt, flagKindRFloat:
		d.Arg3Reg = uint8(third >> 24)
	case flagKindIInt:
		d.Imm = int32(third)
	case flagKindIFloat:
		// Imm is also populated here: LD/ST/VLD/VST need a plain integer
		// address even under the float flag — only the memory word they
		// touch is reinterpreted as float, never the address (spec §4.3).
		d.Imm = int32(third)
		d.ImmF = math.Float32frombits(third)
	}
	d.IsImmediate = flags&0x1 != 0
	d.IsFloat = flags&0x2 != 0

	if !opcode.known() {
		return d, ErrUnsupportedOpcode
	}
	return d, nil
}

func (op Opcode) known() bool {
	return op < numOpcodes && mnemonics[op] != ""
}
