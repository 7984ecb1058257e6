/*
 * GX-VM - Instruction disassembler
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

// Disassemble renders a single instruction word as assembly text. Unknown
// opcodes render as a bracketed form naming the opcode byte rather than failing, since this
// is a diagnostic aid, not part of the execution path.
func Disassemble(word uint64) string {
	d, err := Decode(word)
	if err != nil {
		return fmt.Sprintf("<unknown opcode 0x%02x>", uint8(word>>56))
	}

	mnem := d.Opcode.Mnemonic()
	switch d.Opcode {
	case OpHALT, OpEITER, OpFEMPTY, OpFSWAP, OpFFILL, OpPARALLEL, OpBARRIER, OpLOCK, OpUNLOCK:
		return mnem
	case OpJMP, OpBZ, OpBNZ, OpBLT, OpBGE:
		return fmt.Sprintf("%s %d", mnem, d.Imm)
	case OpNITER, OpNNEXT:
		return fmt.Sprintf("%s %d", mnem, d.Arg1)
	case OpENEXT, OpHASE:
		return mnem
	case OpDEG:
		return fmt.Sprintf("%s r%d", mnem, d.Arg1)
	case OpADD, OpSUB, OpMUL, OpDIV, OpCMP:
		return fmt.Sprintf("%s %s", mnem, disassembleThreeOperand(d))
	case OpMOV:
		return fmt.Sprintf("%s %s", mnem, disassembleMov(d))
	case OpMOVC:
		if d.IsFloat {
			return fmt.Sprintf("%s r%d, f%d", mnem, d.Arg1, d.Arg2)
		}
		return fmt.Sprintf("%s f%d, r%d", mnem, d.Arg1, d.Arg2)
	case OpLD, OpST:
		return fmt.Sprintf("%s %s", mnem, disassembleMemOperand(d))
	case OpVADD, OpVSUB, OpVMUL, OpVDIV:
		return fmt.Sprintf("%s %s", mnem, disassembleVectorOperand(d))
	case OpVLD, OpVST:
		return fmt.Sprintf("%s %s", mnem, disassembleVecMemOperand(d))
	case OpVSET:
		return fmt.Sprintf("%s %s", mnem, disassembleMov(d))
	case OpVSUM:
		if d.IsFloat {
			return fmt.Sprintf("%s f%d, vf%d", mnem, d.Arg1, d.Arg2)
		}
		return fmt.Sprintf("%s r%d, vr%d", mnem, d.Arg1, d.Arg2)
	case OpFPUSH, OpFPOP:
		return fmt.Sprintf("%s r%d", mnem, d.Arg1)
	default:
		return fmt.Sprintf("<unknown instruction: 0x%016x>", word)
	}
}

func regFilePrefix(isFloat bool) string {
	if isFloat {
		return "f"
	}
	return "r"
}

func disassembleThreeOperand(d Decoded) string {
	pfx := regFilePrefix(d.IsFloat)
	if d.IsImmediate {
		if d.IsFloat {
			return fmt.Sprintf("%s%d, %s%d, %g", pfx, d.Arg1, pfx, d.Arg2, d.ImmF)
		}
		return fmt.Sprintf("%s%d, %s%d, %d", pfx, d.Arg1, pfx, d.Arg2, d.Imm)
	}
	return fmt.Sprintf("%s%d, %s%d, %s%d", pfx, d.Arg1, pfx, d.Arg2, pfx, d.Arg3Reg)
}

func disassembleMov(d Decoded) string {
	pfx := regFilePrefix(d.IsFloat)
	if d.IsImmediate {
		if d.IsFloat {
			return fmt.Sprintf("%s%d, %g", pfx, d.Arg1, d.ImmF)
		}
		return fmt.Sprintf("%s%d, %d", pfx, d.Arg1, d.Imm)
	}
	return fmt.Sprintf("%s%d, %s%d", pfx, d.Arg1, pfx, d.Arg3Reg)
}

func disassembleMemOperand(d Decoded) string {
	pfx := regFilePrefix(d.IsFloat)
	if d.IsImmediate {
		return fmt.Sprintf("%s%d, [%d]", pfx, d.Arg1, d.Imm)
	}
	return fmt.Sprintf("%s%d, [r%d]", pfx, d.Arg1, d.Arg2)
}

func disassembleVecMemOperand(d Decoded) string {
	vpfx := "vr"
	if d.IsFloat {
		vpfx = "vf"
	}
	if d.IsImmediate {
		return fmt.Sprintf("%s%d, [%d]", vpfx, d.Arg1, d.Imm)
	}
	return fmt.Sprintf("%s%d, [r%d]", vpfx, d.Arg1, d.Arg2)
}

func disassembleVectorOperand(d Decoded) string {
	vpfx := "vr"
	if d.IsFloat {
		vpfx = "vf"
	}
	return fmt.Sprintf("%s%d, %s%d, %s%d", vpfx, d.Arg1, vpfx, d.Arg2, vpfx, d.Arg3Reg)
}
