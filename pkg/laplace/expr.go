package laplace

import "math"

// Expr is a time-domain closed form. The variant set is closed: it
// covers exactly the shapes produced by inverting series-RLC responses
// (constants, exponentials with a polynomial factor, decaying
// sinusoids, unit-step shifts, and sums of those).
type Expr interface {
	Expression
	EvalAt(t float64) float64

	render(v string) string
	latex(v string) string
}

// Constant value for t >= 0.
type Constant struct {
	Value float64
}

func (e Constant) EvalAt(t float64) float64 { return e.Value }
func (e Constant) String() string           { return e.render("t") }
func (e Constant) LaTeX() string            { return e.latex("t") }

// ExpTerm is Coeff * t^Power * e^(Rate*t). Power is 0 or 1 for every
// series-RLC response.
type ExpTerm struct {
	Coeff float64
	Power int
	Rate  float64
}

func (e ExpTerm) EvalAt(t float64) float64 {
	v := e.Coeff * math.Exp(e.Rate*t)
	for range e.Power {
		v *= t
	}
	return v
}

func (e ExpTerm) String() string { return e.render("t") }
func (e ExpTerm) LaTeX() string  { return e.latex("t") }

// DampedOsc is e^(Rate*t) * (CosCoeff*cos(Omega*t) + SinCoeff*sin(Omega*t)).
type DampedOsc struct {
	CosCoeff float64
	SinCoeff float64
	Rate     float64
	Omega    float64
}

func (e DampedOsc) EvalAt(t float64) float64 {
	osc := e.CosCoeff*math.Cos(e.Omega*t) + e.SinCoeff*math.Sin(e.Omega*t)
	return math.Exp(e.Rate*t) * osc
}

func (e DampedOsc) String() string { return e.render("t") }
func (e DampedOsc) LaTeX() string  { return e.latex("t") }

// Shifted gates Inner behind a unit step: u(t-T0) * Inner(t-T0).
type Shifted struct {
	T0    float64
	Inner Expr
}

func (e Shifted) EvalAt(t float64) float64 {
	if t < e.T0 {
		return 0
	}
	return e.Inner.EvalAt(t - e.T0)
}

func (e Shifted) String() string { return e.render("t") }
func (e Shifted) LaTeX() string  { return e.latex("t") }

type Sum struct {
	Terms []Expr
}

func (e Sum) EvalAt(t float64) float64 {
	var acc float64
	for _, term := range e.Terms {
		acc += term.EvalAt(t)
	}
	return acc
}

func (e Sum) String() string { return e.render("t") }
func (e Sum) LaTeX() string  { return e.latex("t") }

// simplifyExpr flattens nested sums, drops vanished terms, and
// unwraps single-term sums.
func simplifyExpr(e Expr) Expr {
	switch v := e.(type) {
	case Sum:
		var terms []Expr
		for _, t := range v.Terms {
			t = simplifyExpr(t)
			if isZeroExpr(t) {
				continue
			}
			if inner, ok := t.(Sum); ok {
				terms = append(terms, inner.Terms...)
				continue
			}
			terms = append(terms, t)
		}
		switch len(terms) {
		case 0:
			return Constant{0}
		case 1:
			return terms[0]
		}
		return Sum{Terms: terms}
	case Shifted:
		inner := simplifyExpr(v.Inner)
		if isZeroExpr(inner) {
			return Constant{0}
		}
		if v.T0 == 0 {
			return inner
		}
		return Shifted{T0: v.T0, Inner: inner}
	default:
		return e
	}
}

func isZeroExpr(e Expr) bool {
	switch v := e.(type) {
	case Constant:
		return v.Value == 0
	case ExpTerm:
		return v.Coeff == 0
	case DampedOsc:
		return v.CosCoeff == 0 && v.SinCoeff == 0
	}
	return false
}
