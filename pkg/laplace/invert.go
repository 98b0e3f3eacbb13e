package laplace

import (
	"errors"
	"fmt"
)

// ErrInversion marks a transform outside the invertible family. The
// solver recovers from it by switching to time stepping.
var ErrInversion = errors.New("laplace: inversion failed")

// Invert computes the inverse transform of tf as a closed-form Expr.
// Every term must reduce, after simplification, to a strictly proper
// rational e^(-d*s)*P(s)/(s^m*Q(s)) with deg Q <= 2 and at most a
// simple pole at the origin next to Q. That family covers the series
// RLC responses to all five canonical excitations in every damping
// regime; anything else fails with ErrInversion.
func Invert(tf Transform) (Expr, error) {
	tf = tf.Simplify()
	if len(tf.Terms) == 0 {
		return Constant{0}, nil
	}

	exprs := make([]Expr, 0, len(tf.Terms))
	for _, t := range tf.Terms {
		e, err := invertTerm(t)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}

	return simplifyExpr(Sum{Terms: exprs}), nil
}

func invertTerm(t Term) (Expr, error) {
	if t.Delay < 0 {
		return nil, fmt.Errorf("%w: noncausal delay %g", ErrInversion, t.Delay)
	}

	base, err := invertRational(t.Coeff, t.Num.trim(), t.Den.trim())
	if err != nil {
		return nil, err
	}

	if t.Delay > 0 {
		return Shifted{T0: t.Delay, Inner: base}, nil
	}
	return base, nil
}

func invertRational(coeff float64, num, den Poly) (Expr, error) {
	if num.IsZero() || coeff == 0 {
		return Constant{0}, nil
	}
	if den.IsZero() {
		return nil, fmt.Errorf("%w: zero denominator", ErrInversion)
	}
	if num.Degree() >= den.Degree() {
		return nil, fmt.Errorf("%w: term is not strictly proper", ErrInversion)
	}

	m, q := den.factorOrigin()

	// Pure origin poles: c/s and c/s^2.
	if q.Degree() == 0 {
		k := q[0]
		switch m {
		case 1:
			return Constant{coeff * num[0] / k}, nil
		case 2:
			b0, b1 := num[0], 0.0
			if len(num) > 1 {
				b1 = num[1]
			}
			return simplifyExpr(Sum{Terms: []Expr{
				Constant{coeff * b1 / k},
				ExpTerm{Coeff: coeff * b0 / k, Power: 1},
			}}), nil
		default:
			return nil, fmt.Errorf("%w: pole of order %d at the origin", ErrInversion, m)
		}
	}

	if q.Degree() > 2 {
		return nil, fmt.Errorf("%w: denominator degree %d", ErrInversion, den.Degree())
	}
	if m > 1 {
		return nil, fmt.Errorf("%w: repeated pole at the origin", ErrInversion)
	}

	roots, err := q.Roots()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInversion, err)
	}

	if hasCoincidentRoots(roots) {
		// Critical damping: q = a*(s-p)^2 with p real.
		return invertDoublePole(coeff, num, real(roots[0]), q[2], m)
	}

	// All poles simple: the origin (when m == 1) plus the roots of q.
	// Residue at p is Num(p)/D'(p) with D the full denominator.
	dDeriv := den.Deriv()

	var exprs []Expr
	if m == 1 {
		r := coeff * num.EvalReal(0) / dDeriv.EvalReal(0)
		exprs = append(exprs, Constant{r})
	}
	for _, p := range roots {
		if isReal(p) {
			rp := real(p)
			r := coeff * num.EvalReal(rp) / dDeriv.EvalReal(rp)
			exprs = append(exprs, ExpTerm{Coeff: r, Rate: rp})
			continue
		}
		if imag(p) < 0 {
			continue // folded into its conjugate partner
		}
		// r*e^(pt) + conj(r)*e^(conj(p)t) = 2e^(st)(Re r*cos - Im r*sin)
		r := complex(coeff, 0) * num.Eval(p) / dDeriv.Eval(p)
		exprs = append(exprs, DampedOsc{
			CosCoeff: 2 * real(r),
			SinCoeff: -2 * imag(r),
			Rate:     real(p),
			Omega:    imag(p),
		})
	}

	return simplifyExpr(Sum{Terms: exprs}), nil
}

// invertDoublePole expands P(s)/(a*(s-p)^2) for m = 0, or
// P(s)/(a*s*(s-p)^2) for m = 1, around the repeated pole.
func invertDoublePole(coeff float64, num Poly, p, a float64, m int) (Expr, error) {
	valAtP := num.EvalReal(p)
	derivAtP := num.Deriv().EvalReal(p)

	switch m {
	case 0:
		return simplifyExpr(Sum{Terms: []Expr{
			ExpTerm{Coeff: coeff * derivAtP / a, Rate: p},
			ExpTerm{Coeff: coeff * valAtP / a, Power: 1, Rate: p},
		}}), nil
	case 1:
		c0 := num.EvalReal(0) / (a * p * p)
		c1 := (derivAtP*p - valAtP) / (a * p * p)
		c2 := valAtP / (a * p)
		return simplifyExpr(Sum{Terms: []Expr{
			Constant{coeff * c0},
			ExpTerm{Coeff: coeff * c1, Rate: p},
			ExpTerm{Coeff: coeff * c2, Power: 1, Rate: p},
		}}), nil
	default:
		return nil, fmt.Errorf("%w: repeated pole at the origin", ErrInversion)
	}
}
