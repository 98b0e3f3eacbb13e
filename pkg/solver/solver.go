package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Marcelo07sd/rlc/internal/consts"
	"github.com/Marcelo07sd/rlc/pkg/circuit"
	"github.com/Marcelo07sd/rlc/pkg/laplace"
	"github.com/Marcelo07sd/rlc/pkg/signal"
	"github.com/Marcelo07sd/rlc/pkg/util"
)

// Method records how the current trace was produced.
type Method int

const (
	MethodClosedForm Method = iota
	MethodEuler
)

func (m Method) String() string {
	switch m {
	case MethodClosedForm:
		return "closed form"
	case MethodEuler:
		return "euler"
	default:
		return "unknown"
	}
}

// Result is one transient solve. Symbolic holds the time-domain
// closed form when Inverted is true; otherwise inversion failed and
// it holds the un-inverted s-domain expression, with the traces
// coming from the fallback integrator. Never mutated after return.
type Result struct {
	Symbolic laplace.Expression
	Inverted bool
	Method   Method

	Duration float64
	Dt       float64

	Time    []float64
	Input   []float64
	Current []float64
	VR      []float64
	VL      []float64
	VC      []float64
}

type Solver struct {
	points int
}

func New() *Solver {
	return &Solver{points: consts.GridPoints}
}

// NewWithPoints overrides the grid size. Anything below 2 falls back
// to the default.
func NewWithPoints(n int) *Solver {
	if n < 2 {
		n = consts.GridPoints
	}
	return &Solver{points: n}
}

// Solve computes the transient response of ckt to the excitation sig.
func (sv *Solver) Solve(ckt *circuit.Circuit, sig signal.Spec) (*Result, error) {
	vs, err := signal.Transform(sig)
	if err != nil {
		return nil, err
	}
	return sv.SolveTransform(ckt, vs, sig)
}

// SolveTransform runs the pipeline with a caller-supplied V(s) in
// place of the canonical transform of sig. sig still drives input
// sampling, the window policy, and the fallback integrator.
func (sv *Solver) SolveTransform(ckt *circuit.Circuit, vs laplace.Transform, sig signal.Spec) (*Result, error) {
	if ckt == nil {
		return nil, fmt.Errorf("solver: nil circuit")
	}

	sig, err := sig.Normalize()
	if err != nil {
		return nil, err
	}

	// Z(s) = R + s*L + 1/(s*C) over the common denominator s.
	z := laplace.Rational{
		Num: laplace.Poly{1 / ckt.C(), ckt.R(), ckt.L()},
		Den: laplace.Poly{0, 1},
	}
	is := vs.Div(z).Simplify()

	duration := window(sig)
	t := make([]float64, sv.points)
	floats.Span(t, 0, duration)
	dt := t[1] - t[0]

	input, err := signal.Sample(sig, t)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Duration: duration,
		Dt:       dt,
		Time:     t,
		Input:    input,
	}

	closed, invErr := laplace.Invert(is)
	switch {
	case invErr != nil:
		// Degraded: keep the s-domain expression, integrate numerically.
		res.Symbolic = is
		res.Method = MethodEuler
		res.Current = eulerSimulate(ckt, input, dt)
	default:
		res.Symbolic = closed
		res.Inverted = true
		current := make([]float64, len(t))
		for i, tv := range t {
			current[i] = closed.EvalAt(tv)
		}
		if util.AllFinite(current) {
			res.Method = MethodClosedForm
			res.Current = current
		} else {
			res.Method = MethodEuler
			res.Current = eulerSimulate(ckt, input, dt)
		}
	}

	res.VR = make([]float64, len(t))
	for i, iv := range res.Current {
		res.VR[i] = iv * ckt.R()
	}

	grad := util.Gradient(res.Current, t)
	res.VL = make([]float64, len(t))
	for i, dv := range grad {
		res.VL[i] = ckt.L() * dv
	}

	overC := make([]float64, len(t))
	for i, iv := range res.Current {
		overC[i] = iv / ckt.C()
	}
	res.VC = util.CumTrapz(overC, dt)

	return res, nil
}

// window picks the simulation horizon so the transient is fully
// visible: ten widths/delays for the timed kinds, a fixed window
// otherwise.
func window(sig signal.Spec) float64 {
	switch sig.Kind {
	case signal.Pulse:
		return math.Max(consts.DurationFactor*sig.Width, consts.MinWindow)
	case signal.DelayedStep:
		return math.Max(consts.DurationFactor*sig.Delay, consts.MinWindow)
	default:
		return consts.FixedWindow
	}
}

// eulerSimulate integrates L*di/dt + R*i + vC = vin explicitly,
// first order, from rest. dt must stay small against L/R and R*C.
func eulerSimulate(ckt *circuit.Circuit, input []float64, dt float64) []float64 {
	n := len(input)
	current := make([]float64, n)
	if n == 0 {
		return current
	}

	r, l, c := ckt.R(), ckt.L(), ckt.C()
	vC := 0.0
	for k := 1; k < n; k++ {
		di := (input[k-1] - r*current[k-1] - vC) / l
		current[k] = current[k-1] + dt*di
		vC += dt * current[k-1] / c
	}

	return current
}
