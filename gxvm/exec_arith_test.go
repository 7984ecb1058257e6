package gxvm

import "testing"

func TestOpADDIntRegisterForm(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 10)
	vm.WriteR(3, 5)
	vm.opADD(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	if vm.R[1] != 15 {
		t.Errorf("R[1] = %d, want 15", vm.R[1])
	}
}

func TestOpADDIntImmediateForm(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 10)
	vm.opADD(Decoded{Arg1: 1, Arg2: 2, Imm: -3, IsImmediate: true})
	if vm.R[1] != 7 {
		t.Errorf("R[1] = %d, want 7", vm.R[1])
	}
}

func TestOpSUBFloatForm(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteF(2, 5.5)
	vm.WriteF(3, 1.5)
	vm.opSUB(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3, IsFloat: true})
	if vm.F[1] != 4.0 {
		t.Errorf("F[1] = %v, want 4.0", vm.F[1])
	}
}

func TestOpMULInt(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 6)
	vm.WriteR(3, 7)
	vm.opMUL(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	if vm.R[1] != 42 {
		t.Errorf("R[1] = %d, want 42", vm.R[1])
	}
}

func TestOpDIVIntByZeroFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 10)
	vm.WriteR(3, 0)
	_, err := vm.opDIV(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	assertFault(t, err, DivideByZero)
}

func TestOpDIVFloatByZeroYieldsInf(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteF(2, 1.0)
	vm.WriteF(3, 0.0)
	status, err := vm.opDIV(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3, IsFloat: true})
	if err != nil || status != StatusContinue {
		t.Fatalf("opDIV() = %v, %v", status, err)
	}
	if !(vm.F[1] > 1e38) {
		t.Errorf("F[1] = %v, want +Inf", vm.F[1])
	}
}

func TestOpCMPExclusiveFlags(t *testing.T) {
	cases := []struct {
		a, b int32
		want uint8
	}{
		{5, 5, FlagZ},
		{2, 5, FlagN},
		{5, 2, FlagP},
	}
	for _, c := range cases {
		vm := newTestVM(g6Graph())
		vm.WriteR(2, c.a)
		vm.WriteR(3, c.b)
		vm.opCMP(Decoded{Arg2: 2, Arg3Reg: 3})
		if vm.Flags != c.want {
			t.Errorf("CMP(%d,%d) Flags = %b, want %b", c.a, c.b, vm.Flags, c.want)
		}
	}
}

func TestOpMOVIgnoresArg2(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 999) // arg2, must be ignored
	vm.WriteR(3, 123) // the "second source"
	vm.opMOV(Decoded{Arg1: 1, Arg2: 2, Arg3Reg: 3})
	if vm.R[1] != 123 {
		t.Errorf("R[1] = %d, want 123", vm.R[1])
	}
}

func TestOpMOVImmediateForm(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.opMOV(Decoded{Arg1: 1, Imm: -7, IsImmediate: true})
	if vm.R[1] != -7 {
		t.Errorf("R[1] = %d, want -7", vm.R[1])
	}
}

func TestOpMOVCRoundTrip(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(2, 17)
	vm.opMOVC(Decoded{Arg1: 1, Arg2: 2}) // integer form: F[1] <- (f32) R[2]
	if vm.F[1] != 17.0 {
		t.Fatalf("F[1] = %v, want 17.0", vm.F[1])
	}
	vm.opMOVC(Decoded{Arg1: 3, Arg2: 1, IsFloat: true}) // float form: R[3] <- (i32) F[1]
	if vm.R[3] != 17 {
		t.Errorf("R[3] = %d, want 17", vm.R[3])
	}
}

func TestOpMOVCTruncatesTowardZero(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteF(2, -3.9)
	vm.opMOVC(Decoded{Arg1: 1, Arg2: 2, IsFloat: true})
	if vm.R[1] != -3 {
		t.Errorf("R[1] = %d, want -3 (truncated toward zero)", vm.R[1])
	}
}
