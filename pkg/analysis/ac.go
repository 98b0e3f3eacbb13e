package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Marcelo07sd/rlc/pkg/circuit"
	"github.com/Marcelo07sd/rlc/pkg/device"
	"github.com/Marcelo07sd/rlc/pkg/matrix"
)

type SweepType int

const (
	Decade SweepType = iota
	Octave
	Linear
)

func (s SweepType) String() string {
	switch s {
	case Decade:
		return "DEC"
	case Octave:
		return "OCT"
	case Linear:
		return "LIN"
	default:
		return "unknown"
	}
}

func ParseSweepType(s string) (SweepType, error) {
	switch s {
	case "DEC", "dec":
		return Decade, nil
	case "OCT", "oct":
		return Octave, nil
	case "LIN", "lin":
		return Linear, nil
	default:
		return 0, fmt.Errorf("analysis: unknown sweep type %q", s)
	}
}

// AC sweeps the series loop over frequency with a unit source phasor.
type AC struct {
	sweepType SweepType
	startFreq float64
	stopFreq  float64
	numPoints int
}

func NewAC(sweep SweepType, fStart, fStop float64, nPoints int) *AC {
	return &AC{
		sweepType: sweep,
		startFreq: fStart,
		stopFreq:  fStop,
		numPoints: nPoints,
	}
}

// Response holds one sweep. All slices share the index of Freq.
// Phases are degrees.
type Response struct {
	Freq   []float64
	ZMag   []float64
	ZPhase []float64
	IMag   []float64
	IPhase []float64
	VRMag  []float64
	VLMag  []float64
	VCMag  []float64
}

// Run stamps and solves the loop at every sweep frequency. Nodes:
// 1 source, 2 between R and L, 3 between L and C, C to ground,
// branch 4 the source current.
func (ac *AC) Run(ckt *circuit.Circuit) (*Response, error) {
	if ckt == nil {
		return nil, fmt.Errorf("analysis: nil circuit")
	}
	if err := ac.validate(); err != nil {
		return nil, err
	}

	frequencies := ac.frequencyPoints()

	m, err := matrix.New(4)
	if err != nil {
		return nil, err
	}
	defer m.Destroy()
	m.Preallocate()

	n := len(frequencies)
	resp := &Response{
		Freq:   frequencies,
		ZMag:   make([]float64, n),
		ZPhase: make([]float64, n),
		IMag:   make([]float64, n),
		IPhase: make([]float64, n),
		VRMag:  make([]float64, n),
		VLMag:  make([]float64, n),
		VCMag:  make([]float64, n),
	}

	src := device.NewACSource("V1", 1, 0, 4, 1.0)
	devices := []device.Device{
		device.NewResistor("R1", 1, 2, ckt.R()),
		device.NewInductor("L1", 2, 3, ckt.L()),
		device.NewCapacitor("C1", 3, 0, ckt.C()),
		src,
	}

	for i, freq := range frequencies {
		omega := 2.0 * math.Pi * freq

		m.Clear()
		for _, d := range devices {
			d.StampAC(m, omega)
		}

		if err := m.Solve(); err != nil {
			return nil, fmt.Errorf("solve failed at f=%g: %v", freq, err)
		}

		v1 := m.Solution(1)
		v2 := m.Solution(2)
		v3 := m.Solution(3)
		loopI := -m.Solution(src.Branch()) // branch current flows source-internal

		z := complex(1, 0) / loopI

		resp.ZMag[i] = cmplx.Abs(z)
		resp.ZPhase[i] = cmplx.Phase(z) * 180.0 / math.Pi
		resp.IMag[i] = cmplx.Abs(loopI)
		resp.IPhase[i] = cmplx.Phase(loopI) * 180.0 / math.Pi
		resp.VRMag[i] = cmplx.Abs(v1 - v2)
		resp.VLMag[i] = cmplx.Abs(v2 - v3)
		resp.VCMag[i] = cmplx.Abs(v3)
	}

	return resp, nil
}

func (ac *AC) validate() error {
	if ac.startFreq <= 0 || math.IsNaN(ac.startFreq) {
		return fmt.Errorf("%w: sweep start = %v, must be > 0", circuit.ErrInvalidParameter, ac.startFreq)
	}
	if ac.stopFreq < ac.startFreq || math.IsInf(ac.stopFreq, 0) {
		return fmt.Errorf("%w: sweep stop = %v, must be >= start", circuit.ErrInvalidParameter, ac.stopFreq)
	}
	if ac.numPoints < 2 {
		return fmt.Errorf("%w: sweep points = %d, must be >= 2", circuit.ErrInvalidParameter, ac.numPoints)
	}
	return nil
}

func (ac *AC) frequencyPoints() []float64 {
	frequencies := make([]float64, ac.numPoints)

	switch ac.sweepType {
	case Decade:
		logStart := math.Log10(ac.startFreq)
		logStop := math.Log10(ac.stopFreq)
		step := (logStop - logStart) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			frequencies[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case Octave:
		logStart := math.Log2(ac.startFreq)
		logStop := math.Log2(ac.stopFreq)
		step := (logStop - logStart) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			frequencies[i] = math.Pow(2, logStart+float64(i)*step)
		}

	default: // Linear
		step := (ac.stopFreq - ac.startFreq) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			frequencies[i] = ac.startFreq + float64(i)*step
		}
	}

	return frequencies
}
