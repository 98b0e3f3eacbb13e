package laplace

import (
	"math"
	"math/cmplx"
	"strings"
	"testing"
)

// seriesZ is R + sL + 1/(sC) over the common denominator s, for
// R=100 ohm, L=0.1 H, C=10 uF.
func seriesZ() Rational {
	return Rational{
		Num: Poly{1.0 / 1e-5, 100.0, 0.1},
		Den: Poly{0, 1},
	}
}

func TestDivByImpedance(t *testing.T) {
	// Step 10/s divided by Z: the s factors cancel and the current
	// transform is 10/(0.1s^2 + 100s + 1e5).
	vs := Transform{Terms: []Term{{Coeff: 10, Num: Poly{1}, Den: Poly{0, 1}}}}
	is := vs.Div(seriesZ()).Simplify()

	if len(is.Terms) != 1 {
		t.Fatalf("got %d terms, expected 1", len(is.Terms))
	}
	term := is.Terms[0]
	if term.Coeff != 10 {
		t.Errorf("coeff = %v, expected 10", term.Coeff)
	}
	if term.Num.Degree() != 0 || term.Num[0] != 1 {
		t.Errorf("num = %v, expected [1]", term.Num)
	}
	if term.Den.Degree() != 2 {
		t.Fatalf("den = %v, expected degree 2", term.Den)
	}
	expected := Poly{1e5, 100, 0.1}
	for i := range expected {
		if math.Abs(term.Den[i]-expected[i]) > 1e-9*math.Abs(expected[i]) {
			t.Errorf("den[%d] = %v, expected %v", i, term.Den[i], expected[i])
		}
	}
}

func TestMulInvertsDiv(t *testing.T) {
	// Multiplying the current transform back by Z yields a rational
	// equal in value to the original excitation.
	vs := Transform{Terms: []Term{{Coeff: 10, Num: Poly{1}, Den: Poly{0, 1}}}}
	back := vs.Div(seriesZ()).Mul(seriesZ()).Simplify()

	if len(back.Terms) != 1 {
		t.Fatalf("got %d terms, expected 1", len(back.Terms))
	}
	s := complex(200, 300)
	term := back.Terms[0]
	got := complex(term.Coeff, 0) * term.Num.Eval(s) / term.Den.Eval(s)
	want := complex(10, 0) / s
	if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
		t.Errorf("value at %v = %v, expected %v", s, got, want)
	}
}

func TestSimplifyFoldsConstantNumerator(t *testing.T) {
	tf := Transform{Terms: []Term{{Coeff: 2, Num: Poly{3}, Den: Poly{0, 1}}}}.Simplify()
	if len(tf.Terms) != 1 {
		t.Fatalf("got %d terms, expected 1", len(tf.Terms))
	}
	if tf.Terms[0].Coeff != 6 {
		t.Errorf("coeff = %v, expected 6", tf.Terms[0].Coeff)
	}
	if tf.Terms[0].Num[0] != 1 {
		t.Errorf("num = %v, expected [1]", tf.Terms[0].Num)
	}
}

func TestSimplifyCancelsOriginPowers(t *testing.T) {
	// 2s / 5s^2 -> 0.4/s
	tf := Transform{Terms: []Term{{Coeff: 1, Num: Poly{0, 2}, Den: Poly{0, 0, 5}}}}.Simplify()
	if len(tf.Terms) != 1 {
		t.Fatalf("got %d terms, expected 1", len(tf.Terms))
	}
	term := tf.Terms[0]
	if math.Abs(term.Coeff-2) > 1e-12 {
		t.Errorf("coeff = %v, expected 2", term.Coeff)
	}
	if term.Num.Degree() != 0 || term.Num[0] != 1 {
		t.Errorf("num = %v, expected [1]", term.Num)
	}
	if term.Den.Degree() != 1 || term.Den[1] != 5 {
		t.Errorf("den = %v, expected [0 5]", term.Den)
	}
}

func TestSimplifyDetachesStorage(t *testing.T) {
	// (s + 3s^2)/(2s) -> (1 + 3s)/2, with storage independent of the
	// input slices.
	num := Poly{0, 1, 3}
	den := Poly{0, 2}
	tf := Transform{Terms: []Term{{Coeff: 1, Num: num, Den: den}}}.Simplify()

	num[1] = 99
	den[1] = 99

	term := tf.Terms[0]
	if term.Num[0] != 1 || term.Num[1] != 3 {
		t.Errorf("num = %v, expected [1 3]", term.Num)
	}
	if term.Den[0] != 2 {
		t.Errorf("den = %v, expected [2]", term.Den)
	}
}

func TestSimplifyDropsVanishedTerms(t *testing.T) {
	tf := Transform{Terms: []Term{
		{Coeff: 0, Num: Poly{1}, Den: Poly{0, 1}},
		{Coeff: 3, Num: Poly{0}, Den: Poly{0, 1}},
	}}.Simplify()
	if len(tf.Terms) != 0 {
		t.Errorf("got %d terms, expected none", len(tf.Terms))
	}
}

func TestSimplifyKeepsDelay(t *testing.T) {
	// Pulse excitation divided by Z keeps the delayed term's delay.
	vs := Transform{Terms: []Term{
		{Coeff: 5, Num: Poly{1}, Den: Poly{0, 1}},
		{Coeff: -5, Num: Poly{1}, Den: Poly{0, 1}, Delay: 1e-3},
	}}
	is := vs.Div(seriesZ()).Simplify()

	if len(is.Terms) != 2 {
		t.Fatalf("got %d terms, expected 2", len(is.Terms))
	}
	if is.Terms[0].Delay != 0 {
		t.Errorf("first term delay = %v, expected 0", is.Terms[0].Delay)
	}
	if is.Terms[1].Delay != 1e-3 {
		t.Errorf("second term delay = %v, expected 1e-3", is.Terms[1].Delay)
	}
	if is.Terms[1].Coeff != -5 {
		t.Errorf("second term coeff = %v, expected -5", is.Terms[1].Coeff)
	}
}

func TestTransformString(t *testing.T) {
	is := Transform{Terms: []Term{{Coeff: 10, Num: Poly{1}, Den: Poly{1e5, 100, 0.1}}}}

	got := is.String()
	if !strings.HasPrefix(got, "10.00/(") {
		t.Errorf("String = %q, expected 10.00/( prefix", got)
	}
	if !strings.Contains(got, "s^2") {
		t.Errorf("String = %q, expected an s^2 monomial", got)
	}

	tex := is.LaTeX()
	if !strings.Contains(tex, `\frac{`) {
		t.Errorf("LaTeX = %q, expected a \\frac", tex)
	}
	if !strings.Contains(tex, "s^{2}") {
		t.Errorf("LaTeX = %q, expected s^{2}", tex)
	}
}

func TestDelayedTermString(t *testing.T) {
	tf := Transform{Terms: []Term{{Coeff: 1, Num: Poly{1}, Den: Poly{0, 1}, Delay: 0.002}}}
	got := tf.String()
	if got != "1.000/s·e^(-0.0020·s)" {
		t.Errorf("String = %q", got)
	}
}
