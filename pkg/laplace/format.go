package laplace

import (
	"fmt"
	"math"
	"strings"
)

// formatCoeff rounds for display by magnitude, so 1e-5 stays readable
// next to 1e5 in the same formula.
func formatCoeff(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av < 1e-3:
		return fmt.Sprintf("%.2e", v)
	case av < 1:
		return fmt.Sprintf("%.4f", v)
	case av < 10:
		return fmt.Sprintf("%.3f", v)
	case av < 100:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

// joinSigned joins already-rendered terms, turning a leading minus of
// a term into a binary " - ".
func joinSigned(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(p)
			continue
		}
		if rest, ok := strings.CutPrefix(p, "-"); ok {
			b.WriteString(" - ")
			b.WriteString(rest)
		} else {
			b.WriteString(" + ")
			b.WriteString(p)
		}
	}
	return b.String()
}

func polyString(p Poly, v string, tex bool) string {
	q := p.trim()
	if len(q) == 0 {
		return "0"
	}

	var parts []string
	for k := len(q) - 1; k >= 0; k-- {
		c := q[k]
		if c == 0 {
			continue
		}

		var monomial string
		switch {
		case k == 0:
			monomial = ""
		case k == 1:
			monomial = v
		case tex:
			monomial = fmt.Sprintf("%s^{%d}", v, k)
		default:
			monomial = fmt.Sprintf("%s^%d", v, k)
		}

		switch {
		case monomial == "":
			parts = append(parts, formatCoeff(c))
		case c == 1:
			parts = append(parts, monomial)
		case c == -1:
			parts = append(parts, "-"+monomial)
		case tex:
			parts = append(parts, formatCoeff(c)+" "+monomial)
		default:
			parts = append(parts, formatCoeff(c)+"·"+monomial)
		}
	}

	return joinSigned(parts)
}

func renderTerms(terms []Term, tex bool) string {
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = renderTerm(t, tex)
	}
	return joinSigned(parts)
}

func renderTerm(t Term, tex bool) string {
	num := t.Num.trim()
	den := t.Den.trim()

	var numStr string
	switch {
	case num.IsZero():
		return "0"
	case num.Degree() == 0:
		numStr = formatCoeff(t.Coeff * num[0])
	case t.Coeff == 1:
		numStr = polyString(num, "s", tex)
	default:
		inner := polyString(num, "s", tex)
		if len(num.trim()) > 1 || strings.Contains(inner, " ") {
			inner = "(" + inner + ")"
		}
		if tex {
			numStr = formatCoeff(t.Coeff) + " " + inner
		} else {
			numStr = formatCoeff(t.Coeff) + "·" + inner
		}
	}

	var out string
	switch {
	case den.Degree() <= 0 && (len(den) == 0 || den[0] == 1):
		out = numStr
	case tex:
		out = fmt.Sprintf("\\frac{%s}{%s}", numStr, polyString(den, "s", tex))
	default:
		denStr := polyString(den, "s", false)
		if strings.ContainsAny(denStr, " ·") {
			denStr = "(" + denStr + ")"
		}
		out = numStr + "/" + denStr
	}

	if t.Delay > 0 {
		if tex {
			out += fmt.Sprintf(" e^{-%s s}", formatCoeff(t.Delay))
		} else {
			out += fmt.Sprintf("·e^(-%s·s)", formatCoeff(t.Delay))
		}
	}

	return out
}

func (e Constant) render(v string) string { return formatCoeff(e.Value) }
func (e Constant) latex(v string) string  { return formatCoeff(e.Value) }

func (e ExpTerm) render(v string) string {
	var parts []string
	coeff := e.Coeff

	if e.Power >= 1 {
		tPart := v
		if e.Power > 1 {
			tPart = fmt.Sprintf("%s^%d", v, e.Power)
		}
		parts = append(parts, tPart)
	}
	if e.Rate != 0 {
		parts = append(parts, fmt.Sprintf("e^(%s·%s)", formatCoeff(e.Rate), v))
	}

	if len(parts) == 0 {
		return formatCoeff(coeff)
	}
	body := strings.Join(parts, "·")
	switch coeff {
	case 1:
		return body
	case -1:
		return "-" + body
	default:
		return formatCoeff(coeff) + "·" + body
	}
}

func (e ExpTerm) latex(v string) string {
	var parts []string

	if e.Power >= 1 {
		tPart := v
		if e.Power > 1 {
			tPart = fmt.Sprintf("%s^{%d}", v, e.Power)
		}
		parts = append(parts, tPart)
	}
	if e.Rate != 0 {
		parts = append(parts, fmt.Sprintf("e^{%s %s}", formatCoeff(e.Rate), v))
	}

	if len(parts) == 0 {
		return formatCoeff(e.Coeff)
	}
	body := strings.Join(parts, " ")
	switch e.Coeff {
	case 1:
		return body
	case -1:
		return "-" + body
	default:
		return formatCoeff(e.Coeff) + " " + body
	}
}

func (e DampedOsc) render(v string) string {
	cosPart := oscPart(e.CosCoeff, "cos", e.Omega, v, false)
	sinPart := oscPart(e.SinCoeff, "sin", e.Omega, v, false)

	env := ""
	if e.Rate != 0 {
		env = fmt.Sprintf("e^(%s·%s)·", formatCoeff(e.Rate), v)
	}

	switch {
	case cosPart == "" && sinPart == "":
		return "0"
	case cosPart == "":
		return env + sinPart
	case sinPart == "":
		return env + cosPart
	default:
		return env + "(" + joinSigned([]string{cosPart, sinPart}) + ")"
	}
}

func (e DampedOsc) latex(v string) string {
	cosPart := oscPart(e.CosCoeff, "cos", e.Omega, v, true)
	sinPart := oscPart(e.SinCoeff, "sin", e.Omega, v, true)

	env := ""
	if e.Rate != 0 {
		env = fmt.Sprintf("e^{%s %s} ", formatCoeff(e.Rate), v)
	}

	switch {
	case cosPart == "" && sinPart == "":
		return "0"
	case cosPart == "":
		return env + sinPart
	case sinPart == "":
		return env + cosPart
	default:
		return env + "\\left(" + joinSigned([]string{cosPart, sinPart}) + "\\right)"
	}
}

func oscPart(coeff float64, fn string, omega float64, v string, tex bool) string {
	if coeff == 0 {
		return ""
	}

	var call string
	if tex {
		call = fmt.Sprintf("\\%s(%s %s)", fn, formatCoeff(omega), v)
	} else {
		call = fmt.Sprintf("%s(%s·%s)", fn, formatCoeff(omega), v)
	}

	switch coeff {
	case 1:
		return call
	case -1:
		return "-" + call
	default:
		if tex {
			return formatCoeff(coeff) + " " + call
		}
		return formatCoeff(coeff) + "·" + call
	}
}

func (e Shifted) render(v string) string {
	arg := fmt.Sprintf("(%s - %s)", v, formatCoeff(e.T0))
	inner := e.Inner.render(arg)
	if _, isSum := e.Inner.(Sum); isSum || strings.HasPrefix(inner, "-") {
		inner = "(" + inner + ")"
	}
	return fmt.Sprintf("u%s·%s", arg, inner)
}

func (e Shifted) latex(v string) string {
	arg := fmt.Sprintf("\\left(%s - %s\\right)", v, formatCoeff(e.T0))
	inner := e.Inner.latex(arg)
	if _, isSum := e.Inner.(Sum); isSum || strings.HasPrefix(inner, "-") {
		inner = "\\left(" + inner + "\\right)"
	}
	return fmt.Sprintf("u%s %s", arg, inner)
}

func (e Sum) render(v string) string {
	parts := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		parts[i] = t.render(v)
	}
	return joinSigned(parts)
}

func (e Sum) latex(v string) string {
	parts := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		parts[i] = t.latex(v)
	}
	return joinSigned(parts)
}
