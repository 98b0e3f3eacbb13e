package device

import (
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

// ACSource is an ideal phasor voltage source with an extra MNA branch
// row carrying its current.
type ACSource struct {
	twoNode
	branch int
}

func NewACSource(name string, n1, n2, branch int, magnitude float64) *ACSource {
	return &ACSource{
		twoNode: twoNode{name: name, n1: n1, n2: n2, value: magnitude},
		branch:  branch,
	}
}

func (v *ACSource) Type() string { return "V" }

func (v *ACSource) Branch() int { return v.branch }

// StampAC enforces v(n1) - v(n2) = magnitude. The solved branch
// current flows source-internal, from n1 to n2.
func (v *ACSource) StampAC(m *matrix.Matrix, omega float64) {
	m.AddComplex(v.branch, v.n1, 1, 0)
	m.AddComplex(v.n1, v.branch, 1, 0)
	m.AddComplex(v.branch, v.n2, -1, 0)
	m.AddComplex(v.n2, v.branch, -1, 0)
	m.AddRHS(v.branch, v.value, 0)
}
