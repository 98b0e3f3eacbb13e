package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/Marcelo07sd/rlc/internal/consts"
	"github.com/Marcelo07sd/rlc/pkg/laplace"
)

var (
	// ErrUnknownKind reports a signal kind outside the five
	// recognized waveforms.
	ErrUnknownKind = errors.New("signal: unknown signal kind")

	// ErrInvalidParameter reports an out-of-range signal parameter.
	ErrInvalidParameter = errors.New("signal: invalid parameter")
)

type Kind int

const (
	Step Kind = iota
	Pulse
	Ramp
	DelayedStep
	Impulse
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "step"
	case Pulse:
		return "pulse"
	case Ramp:
		return "ramp"
	case DelayedStep:
		return "delayed"
	case Impulse:
		return "impulse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "step":
		return Step, nil
	case "pulse":
		return Pulse, nil
	case "ramp":
		return Ramp, nil
	case "delayed":
		return DelayedStep, nil
	case "impulse":
		return Impulse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Spec selects an excitation waveform. A zero Amplitude means the
// default of 1. Width is the pulse width a; Delay is the step offset
// t0; both may be zero (a degenerate, near-instantaneous edge) but
// not negative.
type Spec struct {
	Kind      Kind
	Amplitude float64
	Width     float64
	Delay     float64
}

func (s Spec) Normalize() (Spec, error) {
	out := s
	if out.Amplitude == 0 {
		out.Amplitude = consts.DefaultAmplitude
	}

	if math.IsNaN(out.Amplitude) || math.IsInf(out.Amplitude, 0) {
		return out, fmt.Errorf("%w: amplitude = %v", ErrInvalidParameter, out.Amplitude)
	}
	if math.IsNaN(out.Width) || math.IsInf(out.Width, 0) || out.Width < 0 {
		return out, fmt.Errorf("%w: width = %v, must be >= 0", ErrInvalidParameter, out.Width)
	}
	if math.IsNaN(out.Delay) || math.IsInf(out.Delay, 0) || out.Delay < 0 {
		return out, fmt.Errorf("%w: delay = %v, must be >= 0", ErrInvalidParameter, out.Delay)
	}

	return out, nil
}

// Transform builds the one-sided transform V(s) of the waveform.
func Transform(spec Spec) (laplace.Transform, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return laplace.Transform{}, err
	}

	a := spec.Amplitude
	switch spec.Kind {
	case Step: // A/s
		return laplace.Transform{Terms: []laplace.Term{
			{Coeff: a, Num: laplace.Poly{1}, Den: laplace.Poly{0, 1}},
		}}, nil

	case Pulse: // (A/s)*(1 - e^(-a*s))
		return laplace.Transform{Terms: []laplace.Term{
			{Coeff: a, Num: laplace.Poly{1}, Den: laplace.Poly{0, 1}},
			{Coeff: -a, Num: laplace.Poly{1}, Den: laplace.Poly{0, 1}, Delay: spec.Width},
		}}, nil

	case Ramp: // A/s^2
		return laplace.Transform{Terms: []laplace.Term{
			{Coeff: a, Num: laplace.Poly{1}, Den: laplace.Poly{0, 0, 1}},
		}}, nil

	case DelayedStep: // (A/s)*e^(-t0*s)
		return laplace.Transform{Terms: []laplace.Term{
			{Coeff: a, Num: laplace.Poly{1}, Den: laplace.Poly{0, 1}, Delay: spec.Delay},
		}}, nil

	case Impulse: // A
		return laplace.Transform{Terms: []laplace.Term{
			{Coeff: a, Num: laplace.Poly{1}, Den: laplace.Poly{1}},
		}}, nil

	default:
		return laplace.Transform{}, fmt.Errorf("%w: %v", ErrUnknownKind, spec.Kind)
	}
}

// Sample evaluates the waveform pointwise on the grid t. The impulse
// is the one approximation: a rectangle of width 2*dt centered at
// t=0 with height A/(2*dt), a true delta being unsampleable.
func Sample(spec Spec, t []float64) ([]float64, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}

	a := spec.Amplitude
	out := make([]float64, len(t))

	switch spec.Kind {
	case Step:
		for i := range t {
			out[i] = a
		}

	case Pulse:
		for i, tv := range t {
			if tv >= 0 && tv < spec.Width {
				out[i] = a
			}
		}

	case Ramp:
		for i, tv := range t {
			if tv >= 0 {
				out[i] = a * tv
			}
		}

	case DelayedStep:
		for i, tv := range t {
			if tv >= spec.Delay {
				out[i] = a
			}
		}

	case Impulse:
		if len(t) < 2 {
			return nil, fmt.Errorf("%w: impulse sampling needs at least 2 grid points", ErrInvalidParameter)
		}
		dt := t[1] - t[0]
		width := 2 * dt
		height := a / width
		for i, tv := range t {
			if math.Abs(tv) < width/2 {
				out[i] = height
			}
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, spec.Kind)
	}

	return out, nil
}
