package signal

import (
	"errors"
	"math"
	"testing"
)

func TestParseKindRoundTrip(t *testing.T) {
	for _, kind := range []Kind{Step, Pulse, Ramp, DelayedStep, Impulse} {
		parsed, err := ParseKind(kind.String())
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", kind.String(), err)
			continue
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %v, expected %v", kind.String(), parsed, kind)
		}
	}

	if _, err := ParseKind("sawtooth"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(sawtooth) error = %v, expected ErrUnknownKind", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	sig, err := Spec{Kind: Step}.Normalize()
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if sig.Amplitude != 1.0 {
		t.Errorf("amplitude = %v, expected default 1", sig.Amplitude)
	}

	// Zero width and delay are degenerate but legal.
	if _, err := (Spec{Kind: Pulse, Amplitude: 5}).Normalize(); err != nil {
		t.Errorf("zero width rejected: %v", err)
	}

	if _, err := (Spec{Kind: Pulse, Width: -1}).Normalize(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative width error = %v, expected ErrInvalidParameter", err)
	}
	if _, err := (Spec{Kind: Step, Amplitude: math.NaN()}).Normalize(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN amplitude error = %v, expected ErrInvalidParameter", err)
	}
}

func TestTransformShapes(t *testing.T) {
	// Step: A/s.
	tf, err := Transform(Spec{Kind: Step, Amplitude: 10})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(tf.Terms) != 1 || tf.Terms[0].Coeff != 10 || tf.Terms[0].Den.Degree() != 1 {
		t.Errorf("step transform = %+v", tf)
	}

	// Pulse: A/s - (A/s)e^(-as).
	tf, err = Transform(Spec{Kind: Pulse, Amplitude: 5, Width: 1e-3})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(tf.Terms) != 2 {
		t.Fatalf("pulse transform has %d terms, expected 2", len(tf.Terms))
	}
	if tf.Terms[1].Coeff != -5 || tf.Terms[1].Delay != 1e-3 {
		t.Errorf("pulse trailing term = %+v", tf.Terms[1])
	}

	// Ramp: A/s^2.
	tf, err = Transform(Spec{Kind: Ramp, Amplitude: 2})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if tf.Terms[0].Den.Degree() != 2 {
		t.Errorf("ramp denominator = %v, expected s^2", tf.Terms[0].Den)
	}

	// Delayed step: (A/s)e^(-t0 s).
	tf, err = Transform(Spec{Kind: DelayedStep, Amplitude: 1, Delay: 2e-3})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if tf.Terms[0].Delay != 2e-3 {
		t.Errorf("delayed step delay = %v, expected 2e-3", tf.Terms[0].Delay)
	}

	// Impulse: the constant A.
	tf, err = Transform(Spec{Kind: Impulse, Amplitude: 3})
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if tf.Terms[0].Den.Degree() != 0 {
		t.Errorf("impulse denominator = %v, expected a constant", tf.Terms[0].Den)
	}

	if _, err := Transform(Spec{Kind: Kind(99)}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind error = %v, expected ErrUnknownKind", err)
	}
}

func TestSampleStep(t *testing.T) {
	out, err := Sample(Spec{Kind: Step, Amplitude: 10}, []float64{0, 1e-3, 5e-3})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i, v := range out {
		if v != 10 {
			t.Errorf("out[%d] = %v, expected 10", i, v)
		}
	}
}

func TestSamplePulseHalfOpen(t *testing.T) {
	// The pulse holds A on [0, a) and is 0 from t = a on.
	sig := Spec{Kind: Pulse, Amplitude: 5, Width: 1e-3}

	out, err := Sample(sig, []float64{0, 5e-4, 1e-3, 2e-3})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	expected := []float64{5, 5, 0, 0}
	for i, want := range expected {
		if out[i] != want {
			t.Errorf("out[%d] = %v, expected %v", i, out[i], want)
		}
	}
}

func TestSampleRamp(t *testing.T) {
	out, err := Sample(Spec{Kind: Ramp, Amplitude: 2}, []float64{0, 0.5, 1.5})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	expected := []float64{0, 1, 3}
	for i, want := range expected {
		if math.Abs(out[i]-want) > 1e-12 {
			t.Errorf("out[%d] = %v, expected %v", i, out[i], want)
		}
	}
}

func TestSampleDelayedStep(t *testing.T) {
	sig := Spec{Kind: DelayedStep, Amplitude: 4, Delay: 1e-3}

	out, err := Sample(sig, []float64{0, 9e-4, 1e-3, 2e-3})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	expected := []float64{0, 0, 4, 4}
	for i, want := range expected {
		if out[i] != want {
			t.Errorf("out[%d] = %v, expected %v", i, out[i], want)
		}
	}
}

func TestSampleImpulseRectangle(t *testing.T) {
	// dt = 1e-5: a rectangle of width 2e-5 and height A/2e-5 at the
	// first grid point only.
	grid := []float64{0, 1e-5, 2e-5, 3e-5}
	out, err := Sample(Spec{Kind: Impulse, Amplitude: 2}, grid)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	height := 2.0 / 2e-5
	if math.Abs(out[0]-height) > 1e-6 {
		t.Errorf("out[0] = %v, expected %v", out[0], height)
	}
	for i := 1; i < len(out); i++ {
		if out[i] != 0 {
			t.Errorf("out[%d] = %v, expected 0", i, out[i])
		}
	}

	// The grid covers t >= 0, half the centered rectangle, so the
	// sampled area is A/2.
	area := 0.0
	for _, v := range out {
		area += v * 1e-5
	}
	if math.Abs(area-1.0) > 1e-6 {
		t.Errorf("sampled rectangle area = %v, expected 1", area)
	}

	if _, err := Sample(Spec{Kind: Impulse}, []float64{0}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("single-point impulse error = %v, expected ErrInvalidParameter", err)
	}
}

func TestSampleUnknownKind(t *testing.T) {
	if _, err := Sample(Spec{Kind: Kind(42)}, []float64{0, 1}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind error = %v, expected ErrUnknownKind", err)
	}
}
