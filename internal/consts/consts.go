package consts

const (
	GridPoints     = 2000 // Samples per transient solve
	DurationFactor = 10.0 // Window = factor * pulse width or step delay
	MinWindow      = 0.01 // Shortest pulse/delayed window (s)
	FixedWindow    = 0.02 // Window for step, ramp, impulse (s)
)

const (
	DefaultAmplitude  = 1.0  // Signal amplitude (V)
	DefaultPulseWidth = 1e-3 // Pulse width a (s)
	DefaultStepDelay  = 1e-3 // Delayed step offset t0 (s)
)

const (
	DefaultR = 100.0 // Resistance (ohm)
	DefaultL = 0.1   // Inductance (H)
	DefaultC = 1e-5  // Capacitance (F)
)

const (
	DefaultSweepStart  = 10.0    // AC sweep start (Hz)
	DefaultSweepStop   = 100_000 // AC sweep stop (Hz)
	DefaultSweepPoints = 200
)
