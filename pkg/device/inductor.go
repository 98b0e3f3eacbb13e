package device

import (
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

// Inductor admittance is 1/(jwL) = -j/(wL).
type Inductor struct {
	twoNode
}

func NewInductor(name string, n1, n2 int, henries float64) *Inductor {
	return &Inductor{twoNode{name: name, n1: n1, n2: n2, value: henries}}
}

func (l *Inductor) Type() string { return "L" }

func (l *Inductor) StampAC(m *matrix.Matrix, omega float64) {
	yL := -1.0 / (omega * l.value)
	stampAdmittance(m, l.n1, l.n2, 0, yL)
}
