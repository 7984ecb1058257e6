/*
 * GX-VM - Fetch/decode/execute pipeline
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

// opTable dispatches a decoded instruction to its handler by opcode,
// mirroring the teacher's createTable pattern: one function-valued slot per
// opcode, filled in declaration order rather than exploded into a giant
// switch.
var opTable = [numOpcodes]func(*VM, Decoded) (Status, error){
	OpHALT: (*VM).opHALT,

	OpJMP: (*VM).opJMP,
	OpBZ:  (*VM).opBZ,
	OpBNZ: (*VM).opBNZ,
	OpBLT: (*VM).opBLT,
	OpBGE: (*VM).opBGE,

	OpNITER: (*VM).opNITER,
	OpNNEXT: (*VM).opNNEXT,
	OpEITER: (*VM).opEITER,
	OpENEXT: (*VM).opENEXT,
	OpHASE:  (*VM).opHASE,
	OpDEG:   (*VM).opDEG,

	OpADD:  (*VM).opADD,
	OpSUB:  (*VM).opSUB,
	OpMUL:  (*VM).opMUL,
	OpDIV:  (*VM).opDIV,
	OpCMP:  (*VM).opCMP,
	OpMOV:  (*VM).opMOV,
	OpMOVC: (*VM).opMOVC,

	OpLD: (*VM).opLD,
	OpST: (*VM).opST,

	OpVADD: (*VM).opVADD,
	OpVSUB: (*VM).opVSUB,
	OpVMUL: (*VM).opVMUL,
	OpVDIV: (*VM).opVDIV,
	OpVLD:  (*VM).opVLD,
	OpVST:  (*VM).opVST,
	OpVSET: (*VM).opVSET,
	OpVSUM: (*VM).opVSUM,

	OpFPUSH:  (*VM).opFPUSH,
	OpFPOP:   (*VM).opFPOP,
	OpFEMPTY: (*VM).opFEMPTY,
	OpFSWAP:  (*VM).opFSWAP,
	OpFFILL:  (*VM).opFFILL,

	OpPARALLEL: (*VM).opPARALLEL,
	OpBARRIER:  (*VM).opBARRIER,
	OpLOCK:     (*VM).opLOCK,
	OpUNLOCK:   (*VM).opUNLOCK,
}

// Fetch returns the instruction word at PC. overflow is true once PC has
// walked off the end of Program, which the pipeline treats as an implicit
// Halt rather than a fault (spec §4.3 state machine summary).
func (vm *VM) Fetch() (word uint64, overflow bool) {
	if int(vm.PC) >= ProgSize {
		return 0, true
	}
	return vm.Program[vm.PC], false
}

// Step executes exactly one instruction: fetch, decode, dispatch, then the
// debug hook and clock tick. It never panics; any fault is surfaced as
// StatusError with vm.Fault populated.
func (vm *VM) Step() Status {
	word, overflow := vm.Fetch()
	if overflow {
		return StatusHalt
	}
	// HALT is recognized as a fetch-time sentinel, per the pipeline pseudocode:
	// it stops the loop before decode/execute/debug_hook/clock, so a halting
	// instruction never ticks the clock or reaches the debugger.
	if Opcode(word>>56) == OpHALT {
		vm.PC++
		return StatusHalt
	}
	vm.PC++

	d, err := Decode(word)
	if err != nil {
		vm.Fault = newFault(vm.PC-1, Unsupported, err.Error())
		return StatusError
	}

	status, err := opTable[d.Opcode](vm, d)
	if err != nil {
		if fault, ok := err.(*Fault); ok {
			vm.Fault = fault
		} else {
			vm.Fault = newFault(vm.PC-1, Unsupported, err.Error())
		}
		status = StatusError
	}

	// DebugHook and the clock tick are unconditional after execute() per the
	// pipeline pseudocode, even when the instruction faulted — only the
	// fetch-time HALT sentinel and a decode failure short-circuit before
	// reaching here.
	if vm.DebugHook != nil {
		vm.DebugHook(vm)
	}
	vm.Clock++
	return status
}

// Run drives Step in a loop until it returns anything other than
// StatusContinue, then invokes ExitHook if one is registered.
func (vm *VM) Run() Status {
	status := StatusContinue
	for status == StatusContinue {
		status = vm.Step()
	}
	if vm.ExitHook != nil {
		vm.ExitHook(vm, status)
	}
	return status
}

// RunLimited is Run with an externally imposed instruction cap (spec §8:
// "implementations may add an external max-instructions cap"). Exceeding
// maxInstrs yields StatusError with a Fault of Kind Unsupported describing
// the limit, and pre-cancellation VM state remains inspectable.
func (vm *VM) RunLimited(maxInstrs uint64) Status {
	status := StatusContinue
	executed := uint64(0)
	for status == StatusContinue {
		if executed >= maxInstrs {
			vm.Fault = newFault(vm.PC, Unsupported, "instruction limit exceeded")
			status = StatusError
			break
		}
		status = vm.Step()
		executed++
	}
	if vm.ExitHook != nil {
		vm.ExitHook(vm, status)
	}
	return status
}
