package device

import (
	"math/cmplx"
	"testing"

	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

func newSystem(t *testing.T, size int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(size)
	if err != nil {
		t.Fatalf("matrix.New failed: %v", err)
	}
	t.Cleanup(m.Destroy)
	m.Preallocate()
	return m
}

func TestResistorStamp(t *testing.T) {
	// 1 A into a grounded 100 ohm resistor raises the node to 100 V.
	m := newSystem(t, 1)

	NewResistor("R1", 1, 0, 100).StampAC(m, 0)
	m.AddRHS(1, 1, 0)

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if d := cmplx.Abs(m.Solution(1) - complex(100, 0)); d > 1e-9 {
		t.Errorf("v = %v, expected 100", m.Solution(1))
	}
}

func TestInductorStamp(t *testing.T) {
	// 1 A into a grounded inductor gives v = jwL.
	m := newSystem(t, 1)

	NewInductor("L1", 1, 0, 1e-3).StampAC(m, 2000)
	m.AddRHS(1, 1, 0)

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if d := cmplx.Abs(m.Solution(1) - complex(0, 2)); d > 1e-9 {
		t.Errorf("v = %v, expected 2i", m.Solution(1))
	}
}

func TestCapacitorStamp(t *testing.T) {
	// 1 A into a grounded capacitor gives v = -j/(wC).
	m := newSystem(t, 1)

	NewCapacitor("C1", 1, 0, 1e-6).StampAC(m, 5e5)
	m.AddRHS(1, 1, 0)

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if d := cmplx.Abs(m.Solution(1) - complex(0, -2)); d > 1e-9 {
		t.Errorf("v = %v, expected -2i", m.Solution(1))
	}
}

func TestACSourceDrivesLoad(t *testing.T) {
	m := newSystem(t, 2)

	src := NewACSource("V1", 1, 0, 2, 5)
	src.StampAC(m, 0)
	NewResistor("R1", 1, 0, 100).StampAC(m, 0)

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if d := cmplx.Abs(m.Solution(1) - complex(5, 0)); d > 1e-9 {
		t.Errorf("node voltage = %v, expected 5", m.Solution(1))
	}
	loopI := -m.Solution(src.Branch())
	if d := cmplx.Abs(loopI - complex(0.05, 0)); d > 1e-9 {
		t.Errorf("source current = %v, expected 0.05", loopI)
	}
}

func TestSeriesLoopAtResonance(t *testing.T) {
	// At w0 the inductor and capacitor reactances cancel and the loop
	// impedance collapses to R.
	m := newSystem(t, 4)

	src := NewACSource("V1", 1, 0, 4, 1)
	devices := []Device{
		NewResistor("R1", 1, 2, 100),
		NewInductor("L1", 2, 3, 0.1),
		NewCapacitor("C1", 3, 0, 1e-5),
		src,
	}
	for _, d := range devices {
		d.StampAC(m, 1000)
	}

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	z := complex(1, 0) / -m.Solution(src.Branch())
	if d := cmplx.Abs(z - complex(100, 0)); d > 1e-9 {
		t.Errorf("Z at resonance = %v, expected 100", z)
	}
}

func TestDeviceIdentity(t *testing.T) {
	cases := []struct {
		dev  Device
		typ  string
		name string
	}{
		{NewResistor("R1", 1, 2, 100), "R", "R1"},
		{NewInductor("L1", 2, 3, 0.1), "L", "L1"},
		{NewCapacitor("C1", 3, 0, 1e-5), "C", "C1"},
		{NewACSource("V1", 1, 0, 4, 1), "V", "V1"},
	}
	for _, c := range cases {
		if c.dev.Type() != c.typ {
			t.Errorf("%s: type = %q, expected %q", c.name, c.dev.Type(), c.typ)
		}
		if c.dev.Name() != c.name {
			t.Errorf("name = %q, expected %q", c.dev.Name(), c.name)
		}
	}

	r := NewResistor("R1", 1, 2, 100)
	if n1, n2 := r.Nodes(); n1 != 1 || n2 != 2 {
		t.Errorf("nodes = %d, %d", n1, n2)
	}
	if r.Value() != 100 {
		t.Errorf("value = %v", r.Value())
	}
	if b := NewACSource("V1", 1, 0, 4, 1).Branch(); b != 4 {
		t.Errorf("branch = %d", b)
	}
}
