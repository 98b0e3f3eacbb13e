package laplace

// Expression is any formula renderable as plain text and LaTeX. Both
// the s-domain Transform and the inverted time-domain Expr satisfy it,
// so a degraded solve can hand back the un-inverted transform under
// the same field.
type Expression interface {
	String() string
	LaTeX() string
}

// Rational is a ratio of polynomials in s, e.g. a transform-domain
// impedance.
type Rational struct {
	Num Poly
	Den Poly
}

// Term is Coeff * e^(-Delay*s) * Num(s)/Den(s).
type Term struct {
	Coeff float64
	Num   Poly
	Den   Poly
	Delay float64
}

// Transform is a sum of delayed rational terms. The five canonical
// excitations and their circuit responses all take this shape.
type Transform struct {
	Terms []Term
}

// Div computes tf/z by cross-multiplying each term with the
// reciprocal of z.
func (tf Transform) Div(z Rational) Transform {
	out := Transform{Terms: make([]Term, len(tf.Terms))}
	for i, t := range tf.Terms {
		out.Terms[i] = Term{
			Coeff: t.Coeff,
			Num:   t.Num.Mul(z.Den),
			Den:   t.Den.Mul(z.Num),
			Delay: t.Delay,
		}
	}
	return out
}

// Mul computes tf*z term by term.
func (tf Transform) Mul(z Rational) Transform {
	return tf.Div(Rational{Num: z.Den, Den: z.Num})
}

// Simplify cancels common powers of s between numerator and
// denominator of every term, folds constant numerators into the
// coefficient, and drops vanished terms. The returned terms own their
// storage and do not alias the input polynomials.
func (tf Transform) Simplify() Transform {
	out := Transform{}
	for _, t := range tf.Terms {
		num := t.Num.trim()
		den := t.Den.trim()
		if t.Coeff == 0 || num.IsZero() {
			continue
		}

		kn, qn := num.factorOrigin()
		kd, qd := den.factorOrigin()
		cancel := min(kn, kd)
		if cancel > 0 {
			num = qn.shiftUp(kn - cancel)
			den = qd.shiftUp(kd - cancel)
		}

		coeff := t.Coeff
		if num.Degree() == 0 && num[0] != 1 {
			coeff *= num[0]
			num = Poly{1}
		}

		out.Terms = append(out.Terms, Term{Coeff: coeff, Num: num.Clone(), Den: den.Clone(), Delay: t.Delay})
	}
	return out
}

// shiftUp multiplies by s^k.
func (p Poly) shiftUp(k int) Poly {
	if k == 0 {
		return p
	}
	out := make(Poly, len(p)+k)
	copy(out[k:], p)
	return out
}

func (tf Transform) String() string {
	return renderTerms(tf.Terms, false)
}

func (tf Transform) LaTeX() string {
	return renderTerms(tf.Terms, true)
}
