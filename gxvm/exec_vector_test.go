package gxvm

import "testing"

func TestOpVADDIntLanes(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.VR[2] = [VecLanes]int32{1, 2, 3, 4}
	vm.VR[3] = [VecLanes]int32{10, 20, 30, 40}
	vm.opVADD(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	want := [VecLanes]int32{11, 22, 33, 44}
	if vm.VR[1] != want {
		t.Errorf("VR[1] = %v, want %v", vm.VR[1], want)
	}
}

func TestOpVDIVIntByZeroFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.VR[2] = [VecLanes]int32{10, 10, 10, 10}
	vm.VR[3] = [VecLanes]int32{2, 0, 2, 2}
	_, err := vm.opVDIV(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	assertFault(t, err, DivideByZero)
}

func TestOpVLDVSTRoundTrip(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.VR[1] = [VecLanes]int32{7, 8, 9, 10}
	if _, err := vm.opVST(Decoded{Arg1: 1, Imm: 40, IsImmediate: true}); err != nil {
		t.Fatalf("opVST() error = %v", err)
	}
	if _, err := vm.opVLD(Decoded{Arg1: 2, Imm: 40, IsImmediate: true}); err != nil {
		t.Fatalf("opVLD() error = %v", err)
	}
	if vm.VR[2] != vm.VR[1] {
		t.Errorf("VR[2] = %v, want %v (round-trip)", vm.VR[2], vm.VR[1])
	}
}

func TestOpVLDOutOfRangeFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	_, err := vm.opVLD(Decoded{Arg1: 1, Imm: MemSize - 2, IsImmediate: true})
	assertFault(t, err, MemoryOutOfRange)
}

func TestOpVSETBroadcastsImmediate(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.opVSET(Decoded{Arg1: 1, Imm: 9, IsImmediate: true})
	want := [VecLanes]int32{9, 9, 9, 9}
	if vm.VR[1] != want {
		t.Errorf("VR[1] = %v, want %v", vm.VR[1], want)
	}
}

func TestOpVSETBroadcastsRegisterIgnoringArg2(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(5, 3)
	vm.opVSET(Decoded{Arg1: 1, Arg2: 99, Arg3Reg: 5})
	want := [VecLanes]int32{3, 3, 3, 3}
	if vm.VR[1] != want {
		t.Errorf("VR[1] = %v, want %v", vm.VR[1], want)
	}
}

// TestOpVSUMAccumulatesRatherThanReplaces exercises the spec §4.3 footnote
// that VSUM adds to, rather than overwrites, the destination scalar.
func TestOpVSUMAccumulatesRatherThanReplaces(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(1, 100)
	vm.VR[2] = [VecLanes]int32{1, 2, 3, 4}
	vm.opVSUM(Decoded{Arg1: 1, Arg2: 2})
	if vm.R[1] != 110 {
		t.Errorf("R[1] = %d, want 110 (100 + 10)", vm.R[1])
	}
}

// TestVectorReduceScenario is spec §8 scenario 5: store [1,2,3,4] as float
// bits, VLD, zero the accumulator, VSUM, expect F_ACC = 10.0.
func TestVectorReduceScenario(t *testing.T) {
	vm := newTestVM(g6Graph())
	vals := [VecLanes]float32{1.0, 2.0, 3.0, 4.0}
	for i, v := range vals {
		vm.WriteF(1, v)
		if _, err := vm.opST(Decoded{Arg1: 1, Imm: int32(i), IsImmediate: true, IsFloat: true}); err != nil {
			t.Fatalf("opST() error = %v", err)
		}
	}
	vm.opVLD(Decoded{Arg1: 0, Imm: 0, IsImmediate: true, IsFloat: true})
	vm.opMOV(Decoded{Arg1: FAcc, Arg3Reg: FZero, IsFloat: true})
	vm.opVSUM(Decoded{Arg1: FAcc, Arg2: 0, IsFloat: true})
	if vm.F[FAcc] != 10.0 {
		t.Errorf("F_ACC = %v, want 10.0", vm.F[FAcc])
	}
}
