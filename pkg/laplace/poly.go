package laplace

import (
	"fmt"
	"math"
)

// Poly is a dense polynomial in s. Index = power, so Poly{2, 0, 1}
// is s^2 + 2.
type Poly []float64

func (p Poly) trim() Poly {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

func (p Poly) IsZero() bool { return len(p.trim()) == 0 }

// Degree of the zero polynomial is reported as -1.
func (p Poly) Degree() int { return len(p.trim()) - 1 }

func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out.trim()
}

func (p Poly) Deriv() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out.trim()
}

// Eval by Horner's rule at a complex point.
func (p Poly) Eval(s complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*s + complex(p[i], 0)
	}
	return acc
}

func (p Poly) EvalReal(x float64) float64 {
	var acc float64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}
	return acc
}

// factorOrigin splits p into s^k * q with q(0) != 0. Returns k and q.
func (p Poly) factorOrigin() (int, Poly) {
	q := p.trim()
	k := 0
	for len(q) > 0 && q[0] == 0 {
		q = q[1:]
		k++
	}
	return k, q
}

// Roots solves p = 0 for degree 1 and 2. A zero discriminant yields
// a coincident pair; a negative one a conjugate pair with the +omega
// root first.
func (p Poly) Roots() ([]complex128, error) {
	q := p.trim()
	switch q.Degree() {
	case 1:
		return []complex128{complex(-q[0]/q[1], 0)}, nil
	case 2:
		a, b, c := q[2], q[1], q[0]
		disc := b*b - 4*a*c
		switch {
		case disc > 0:
			sq := math.Sqrt(disc)
			return []complex128{
				complex((-b+sq)/(2*a), 0),
				complex((-b-sq)/(2*a), 0),
			}, nil
		case disc == 0:
			r := complex(-b/(2*a), 0)
			return []complex128{r, r}, nil
		default:
			re := -b / (2 * a)
			im := math.Sqrt(-disc) / (2 * a)
			return []complex128{complex(re, im), complex(re, -im)}, nil
		}
	default:
		return nil, fmt.Errorf("laplace: no closed-form roots for degree %d", q.Degree())
	}
}

// hasCoincidentRoots reports a repeated root among the given roots.
func hasCoincidentRoots(roots []complex128) bool {
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			if roots[i] == roots[j] {
				return true
			}
		}
	}
	return false
}

func isReal(z complex128) bool { return imag(z) == 0 }
