/*
 * GX-VM - Debugger commands
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

package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/austinhamilton1/gx-vm/gxvm"
)

// Debugger wraps a VM with the breakpoint set and output stream the command
// table in parser.go operates on.
type Debugger struct {
	VM          *gxvm.VM
	Out         io.Writer
	breakpoints map[uint32]bool
}

// New returns a Debugger attached to vm, writing command output to out.
func New(vm *gxvm.VM, out io.Writer) *Debugger {
	return &Debugger{VM: vm, Out: out, breakpoints: make(map[uint32]bool)}
}

// RunToBreakOrHalt single-steps the VM until it halts, faults, or lands on
// PC of an active breakpoint (checked before executing that instruction).
func (d *Debugger) RunToBreakOrHalt() gxvm.Status {
	for {
		if d.breakpoints[d.VM.PC] {
			fmt.Fprintf(d.Out, "breakpoint hit at pc=%d\n", d.VM.PC)
			return gxvm.StatusContinue
		}
		status := d.VM.Step()
		if status != gxvm.StatusContinue {
			return status
		}
	}
}

func cmdStep(_ *cmdLine, d *Debugger) (bool, error) {
	status := d.VM.Step()
	fmt.Fprintf(d.Out, "pc=%d status=%v\n", d.VM.PC, status)
	return false, nil
}

func cmdContinue(_ *cmdLine, d *Debugger) (bool, error) {
	status := d.RunToBreakOrHalt()
	fmt.Fprintf(d.Out, "stopped: status=%v pc=%d\n", status, d.VM.PC)
	if status == gxvm.StatusError && d.VM.Fault != nil {
		fmt.Fprintf(d.Out, "fault: %v\n", d.VM.Fault)
	}
	return false, nil
}

func cmdRegs(_ *cmdLine, d *Debugger) (bool, error) {
	fmt.Fprintf(d.Out, "pc=%d flags=%#02x clock=%d\n", d.VM.PC, d.VM.Flags, d.VM.Clock)
	for i, v := range d.VM.R {
		fmt.Fprintf(d.Out, "R[%2d]=%d ", i, v)
		if i%4 == 3 {
			fmt.Fprintln(d.Out)
		}
	}
	fmt.Fprintln(d.Out)
	for i, v := range d.VM.F {
		fmt.Fprintf(d.Out, "F[%2d]=%v ", i, v)
		if i%4 == 3 {
			fmt.Fprintln(d.Out)
		}
	}
	fmt.Fprintln(d.Out)
	return false, nil
}

func cmdMem(line *cmdLine, d *Debugger) (bool, error) {
	addr, err := line.getInt()
	if err != nil {
		return false, fmt.Errorf("mem: %w", err)
	}
	if addr < 0 || addr >= gxvm.MemSize {
		return false, errors.New("mem: address out of range")
	}
	fmt.Fprintf(d.Out, "mem[%d] = %d (0x%08x)\n", addr, d.VM.Memory[addr], d.VM.Memory[addr])
	return false, nil
}

func cmdFrontier(_ *cmdLine, d *Debugger) (bool, error) {
	fmt.Fprintf(d.Out, "frontier: size=%d empty=%v\n", d.VM.Frontier.Size(), d.VM.Frontier.Empty())
	fmt.Fprintf(d.Out, "next_frontier: size=%d empty=%v\n", d.VM.NextFrontier.Size(), d.VM.NextFrontier.Empty())
	return false, nil
}

func cmdBreak(line *cmdLine, d *Debugger) (bool, error) {
	pc, err := line.getInt()
	if err != nil {
		return false, fmt.Errorf("break: %w", err)
	}
	d.breakpoints[uint32(pc)] = true
	fmt.Fprintf(d.Out, "breakpoint set at pc=%d\n", pc)
	return false, nil
}

func cmdDelete(line *cmdLine, d *Debugger) (bool, error) {
	pc, err := line.getInt()
	if err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	delete(d.breakpoints, uint32(pc))
	fmt.Fprintf(d.Out, "breakpoint cleared at pc=%d\n", pc)
	return false, nil
}

func cmdDisasm(line *cmdLine, d *Debugger) (bool, error) {
	start, err := line.getInt()
	if err != nil {
		start = int64(d.VM.PC)
	}
	count := int64(8)
	if n, err := line.getInt(); err == nil {
		count = n
	}
	for i := int64(0); i < count; i++ {
		pc := start + i
		if pc < 0 || pc >= gxvm.ProgSize {
			break
		}
		fmt.Fprintf(d.Out, "%6d: %s\n", pc, gxvm.Disassemble(d.VM.Program[pc]))
	}
	return false, nil
}

func cmdQuit(_ *cmdLine, _ *Debugger) (bool, error) {
	return true, nil
}

func cmdHelp(_ *cmdLine, d *Debugger) (bool, error) {
	fmt.Fprintln(d.Out, "commands: step, continue, regs, mem <addr>, frontier, break <pc>, delete <pc>, disasm [pc] [count], quit, help")
	return false, nil
}
