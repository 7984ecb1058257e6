package gxvm

import (
	"math"
	"testing"
)

func TestOpSTAndLDIntImmediateAddress(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(1, 777)
	if _, err := vm.opST(Decoded{Arg1: 1, Imm: 100, IsImmediate: true}); err != nil {
		t.Fatalf("opST() error = %v", err)
	}
	if _, err := vm.opLD(Decoded{Arg1: 2, Imm: 100, IsImmediate: true}); err != nil {
		t.Fatalf("opLD() error = %v", err)
	}
	if vm.R[2] != 777 {
		t.Errorf("R[2] = %d, want 777", vm.R[2])
	}
}

func TestOpLDSTRegisterHeldAddress(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(5, 200) // base address register
	vm.WriteR(1, 42)
	if _, err := vm.opST(Decoded{Arg1: 1, Arg2: 5}); err != nil {
		t.Fatalf("opST() error = %v", err)
	}
	if vm.Memory[200] != 42 {
		t.Errorf("Memory[200] = %d, want 42", vm.Memory[200])
	}
}

func TestOpLDSTOutOfRangeFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	_, err := vm.opLD(Decoded{Arg1: 1, Imm: MemSize, IsImmediate: true})
	assertFault(t, err, MemoryOutOfRange)

	_, err = vm.opST(Decoded{Arg1: 1, Imm: -1, IsImmediate: true})
	assertFault(t, err, MemoryOutOfRange)
}

func TestOpSTFloatIsBitPreservingReinterpret(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteF(1, 3.25)
	if _, err := vm.opST(Decoded{Arg1: 1, Imm: 10, IsImmediate: true, IsFloat: true}); err != nil {
		t.Fatalf("opST() error = %v", err)
	}
	if vm.Memory[10] != math.Float32bits(3.25) {
		t.Errorf("Memory[10] = 0x%x, want bit pattern of 3.25", vm.Memory[10])
	}

	// LD with the int flag must read back the same bits, not a cast.
	if _, err := vm.opLD(Decoded{Arg1: 2, Imm: 10, IsImmediate: true}); err != nil {
		t.Fatalf("opLD() error = %v", err)
	}
	if uint32(vm.R[2]) != math.Float32bits(3.25) {
		t.Errorf("R[2] = 0x%x, want raw bit pattern", uint32(vm.R[2]))
	}
}

func TestOpSTDiscardsWriteToZeroRegisterOnLoadBack(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(1, 55)
	vm.opST(Decoded{Arg1: 1, Imm: 3, IsImmediate: true})
	vm.opLD(Decoded{Arg1: uint8(RZero), Imm: 3, IsImmediate: true})
	if vm.R[RZero] != 0 {
		t.Errorf("R_ZERO = %d, want 0 (write discarded)", vm.R[RZero])
	}
}
