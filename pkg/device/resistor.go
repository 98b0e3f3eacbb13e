package device

import (
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

// Resistor is frequency independent, Y = 1/R.
type Resistor struct {
	twoNode
}

func NewResistor(name string, n1, n2 int, ohms float64) *Resistor {
	return &Resistor{twoNode{name: name, n1: n1, n2: n2, value: ohms}}
}

func (r *Resistor) Type() string { return "R" }

func (r *Resistor) StampAC(m *matrix.Matrix, omega float64) {
	g := 1.0 / r.value
	stampAdmittance(m, r.n1, r.n2, g, 0)
}
