package device

import (
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

// Device is one element of the AC loop. StampAC adds the element's
// phasor contribution to the nodal system at angular frequency omega.
// Node index 0 is ground; the matrix ignores stamps against it.
type Device interface {
	Name() string
	Type() string
	StampAC(m *matrix.Matrix, omega float64)
}

// twoNode is the shared part of a two-terminal element.
type twoNode struct {
	name  string
	n1    int
	n2    int
	value float64
}

func (d twoNode) Name() string      { return d.name }
func (d twoNode) Value() float64    { return d.value }
func (d twoNode) Nodes() (int, int) { return d.n1, d.n2 }

// stampAdmittance adds the four-quadrant pattern of a two-terminal
// admittance re + j*im between n1 and n2.
func stampAdmittance(m *matrix.Matrix, n1, n2 int, re, im float64) {
	m.AddComplex(n1, n1, re, im)
	m.AddComplex(n1, n2, -re, -im)
	m.AddComplex(n2, n1, -re, -im)
	m.AddComplex(n2, n2, re, im)
}
