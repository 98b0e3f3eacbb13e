package device

import (
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

// Capacitor admittance is jwC.
type Capacitor struct {
	twoNode
}

func NewCapacitor(name string, n1, n2 int, farads float64) *Capacitor {
	return &Capacitor{twoNode{name: name, n1: n1, n2: n2, value: farads}}
}

func (c *Capacitor) Type() string { return "C" }

func (c *Capacitor) StampAC(m *matrix.Matrix, omega float64) {
	stampAdmittance(m, c.n1, c.n2, 0, omega*c.value)
}
