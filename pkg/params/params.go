package params

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Marcelo07sd/rlc/internal/consts"
	"github.com/Marcelo07sd/rlc/pkg/circuit"
	"github.com/Marcelo07sd/rlc/pkg/signal"
)

// SignalParams mirrors the persisted signal_params object. A (pulse
// width) and T0 (step delay) are optional in the file; pointers keep
// their presence through a round trip.
type SignalParams struct {
	Amplitude float64  `json:"amplitude"`
	A         *float64 `json:"a,omitempty"`
	T0        *float64 `json:"t0,omitempty"`
}

// Record mirrors the persisted parameter file field-for-field.
type Record struct {
	R            float64      `json:"R"`
	L            float64      `json:"L"`
	C            float64      `json:"C"`
	SignalType   string       `json:"signal_type"`
	SignalParams SignalParams `json:"signal_params"`
}

func Default() Record {
	return Record{
		R:          consts.DefaultR,
		L:          consts.DefaultL,
		C:          consts.DefaultC,
		SignalType: signal.Step.String(),
		SignalParams: SignalParams{
			Amplitude: 10,
		},
	}
}

func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("params: read %s: %v", path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("params: parse %s: %v", path, err)
	}

	return rec, nil
}

func Save(path string, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("params: encode: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("params: write %s: %v", path, err)
	}

	return nil
}

// Build validates the record into core inputs. Missing optional
// fields take their defaults; present ones win even when zero.
func (r Record) Build() (*circuit.Circuit, signal.Spec, error) {
	ckt, err := circuit.New(r.R, r.L, r.C)
	if err != nil {
		return nil, signal.Spec{}, err
	}

	kind, err := signal.ParseKind(r.SignalType)
	if err != nil {
		return nil, signal.Spec{}, err
	}

	spec := signal.Spec{Kind: kind, Amplitude: r.SignalParams.Amplitude}
	switch kind {
	case signal.Pulse:
		spec.Width = consts.DefaultPulseWidth
		if r.SignalParams.A != nil {
			spec.Width = *r.SignalParams.A
		}
	case signal.DelayedStep:
		spec.Delay = consts.DefaultStepDelay
		if r.SignalParams.T0 != nil {
			spec.Delay = *r.SignalParams.T0
		}
	}

	spec, err = spec.Normalize()
	if err != nil {
		return nil, signal.Spec{}, err
	}

	return ckt, spec, nil
}

// FromInputs is the inverse of Build, for saving.
func FromInputs(ckt *circuit.Circuit, sig signal.Spec) Record {
	rec := Record{
		R:          ckt.R(),
		L:          ckt.L(),
		C:          ckt.C(),
		SignalType: sig.Kind.String(),
		SignalParams: SignalParams{
			Amplitude: sig.Amplitude,
		},
	}

	switch sig.Kind {
	case signal.Pulse:
		a := sig.Width
		rec.SignalParams.A = &a
	case signal.DelayedStep:
		t0 := sig.Delay
		rec.SignalParams.T0 = &t0
	}

	return rec
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGKkmunpf])?$`)

// ParseValue reads a number with an optional engineering suffix, so
// component values can be entered as "10k", "100n", or "2.2meg".
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("params: invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}

	return num, nil
}
