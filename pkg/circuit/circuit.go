package circuit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Marcelo07sd/rlc/pkg/util"
)

// ErrInvalidParameter reports a component value that is not strictly
// positive and finite.
var ErrInvalidParameter = errors.New("circuit: invalid parameter")

type Damping int

const (
	Underdamped Damping = iota
	CriticallyDamped
	Overdamped
)

func (d Damping) String() string {
	switch d {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return "unknown"
	}
}

// Circuit is a series RLC loop. Component values and the derived
// characteristic quantities are fixed at construction.
type Circuit struct {
	r, l, c float64

	omega0  float64
	zeta    float64
	f0      float64
	omegaD  float64
	damping Damping
}

func New(r, l, c float64) (*Circuit, error) {
	if err := checkPositive("R", r); err != nil {
		return nil, err
	}
	if err := checkPositive("L", l); err != nil {
		return nil, err
	}
	if err := checkPositive("C", c); err != nil {
		return nil, err
	}

	ckt := &Circuit{r: r, l: l, c: c}

	ckt.omega0 = 1.0 / math.Sqrt(l*c)
	ckt.zeta = (r / 2.0) * math.Sqrt(c/l)
	ckt.f0 = ckt.omega0 / (2.0 * math.Pi)

	switch {
	case ckt.zeta < 1:
		ckt.damping = Underdamped
		ckt.omegaD = ckt.omega0 * math.Sqrt(1.0-ckt.zeta*ckt.zeta)
	case ckt.zeta == 1:
		ckt.damping = CriticallyDamped
	default:
		ckt.damping = Overdamped
	}

	return ckt, nil
}

func checkPositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: %s = %v, must be > 0", ErrInvalidParameter, name, value)
	}
	return nil
}

func (c *Circuit) R() float64 { return c.r }
func (c *Circuit) L() float64 { return c.l }
func (c *Circuit) C() float64 { return c.c }

// Omega0 is the natural angular frequency 1/sqrt(LC) in rad/s.
func (c *Circuit) Omega0() float64 { return c.omega0 }

// Zeta is the damping ratio (R/2)*sqrt(C/L).
func (c *Circuit) Zeta() float64 { return c.zeta }

// F0 is the resonant frequency in Hz.
func (c *Circuit) F0() float64 { return c.f0 }

// OmegaD is the damped angular frequency. Zero unless underdamped.
func (c *Circuit) OmegaD() float64 { return c.omegaD }

func (c *Circuit) Damping() Damping { return c.damping }

// Impedance is the steady-state phasor impedance at frequency f (Hz),
// Z = R + j(wL - 1/(wC)). f must be nonzero.
func (c *Circuit) Impedance(f float64) complex128 {
	omega := 2.0 * math.Pi * f
	return complex(c.r, omega*c.l-1.0/(omega*c.c))
}

// Poles returns the roots of the characteristic polynomial
// L*s^2 + R*s + 1/C. A conjugate pair when underdamped, coincident
// real roots at critical damping.
func (c *Circuit) Poles() (complex128, complex128) {
	disc := c.r*c.r - 4.0*c.l/c.c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return complex((-c.r+sq)/(2.0*c.l), 0), complex((-c.r-sq)/(2.0*c.l), 0)
	}
	re := -c.r / (2.0 * c.l)
	im := math.Sqrt(-disc) / (2.0 * c.l)
	return complex(re, im), complex(re, -im)
}

// Characteristics bundles the derived quantities for reporting.
type Characteristics struct {
	R       float64 `json:"R"`
	L       float64 `json:"L"`
	C       float64 `json:"C"`
	Omega0  float64 `json:"omega0"`
	Zeta    float64 `json:"zeta"`
	F0      float64 `json:"f0"`
	OmegaD  float64 `json:"omegaD"`
	Damping string  `json:"damping"`
}

func (c *Circuit) Characteristics() Characteristics {
	return Characteristics{
		R:       c.r,
		L:       c.l,
		C:       c.c,
		Omega0:  c.omega0,
		Zeta:    c.zeta,
		F0:      c.f0,
		OmegaD:  c.omegaD,
		Damping: c.damping.String(),
	}
}

func (c *Circuit) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Series RLC circuit:\n")
	fmt.Fprintf(&b, "  R    = %s\n", util.FormatValueFactor(c.r, "ohm"))
	fmt.Fprintf(&b, "  L    = %s\n", util.FormatValueFactor(c.l, "H"))
	fmt.Fprintf(&b, "  C    = %s\n", util.FormatValueFactor(c.c, "F"))
	fmt.Fprintf(&b, "  w0   = %.4f rad/s\n", c.omega0)
	fmt.Fprintf(&b, "  f0   = %s\n", util.FormatValueFactor(c.f0, "Hz"))
	fmt.Fprintf(&b, "  zeta = %.4f (%s)", c.zeta, c.damping)
	if c.damping == Underdamped {
		fmt.Fprintf(&b, "\n  wd   = %.4f rad/s", c.omegaD)
	}

	return b.String()
}
