package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Marcelo07sd/rlc/internal/consts"
	"github.com/Marcelo07sd/rlc/pkg/analysis"
	"github.com/Marcelo07sd/rlc/pkg/circuit"
	"github.com/Marcelo07sd/rlc/pkg/export"
	"github.com/Marcelo07sd/rlc/pkg/params"
	"github.com/Marcelo07sd/rlc/pkg/plot"
	"github.com/Marcelo07sd/rlc/pkg/signal"
	"github.com/Marcelo07sd/rlc/pkg/solver"
	"github.com/Marcelo07sd/rlc/pkg/util"
)

var (
	paramsPath = flag.String("params", "", "parameter file (JSON)")
	savePath   = flag.String("save", "", "write the resolved parameters to this file")

	rFlag = flag.String("r", "", "resistance in ohm, e.g. 100 or 2.2k")
	lFlag = flag.String("l", "", "inductance in H, e.g. 0.1 or 100m")
	cFlag = flag.String("c", "", "capacitance in F, e.g. 10u")

	signalFlag = flag.String("signal", "", "excitation: step, pulse, ramp, delayed or impulse")
	ampFlag    = flag.Float64("amplitude", 0, "excitation amplitude in V")
	widthFlag  = flag.String("width", "", "pulse width in s, e.g. 1m")
	delayFlag  = flag.String("delay", "", "step delay in s, e.g. 2m")

	acFlag     = flag.Bool("ac", false, "run the AC impedance sweep")
	sweepFlag  = flag.String("sweep", "DEC", "sweep type: DEC, OCT or LIN")
	fstartFlag = flag.String("fstart", "10", "sweep start frequency in Hz")
	fstopFlag  = flag.String("fstop", "100k", "sweep stop frequency in Hz")
	pointsFlag = flag.Int("points", consts.DefaultSweepPoints, "sweep point count")

	csvPath    = flag.String("csv", "", "write transient samples as CSV")
	xlsxPath   = flag.String("xlsx", "", "write transient samples as XLSX")
	acCsvPath  = flag.String("ac-csv", "", "write the sweep as CSV (needs -ac)")
	acXlsxPath = flag.String("ac-xlsx", "", "write the sweep as XLSX (needs -ac)")
	wavePath   = flag.String("waveforms", "", "write the waveform grid as PNG")
	phasePath  = flag.String("phase", "", "write the phase diagram (.png/.svg/.pdf)")
	bodePath   = flag.String("bode", "", "write the impedance sweep as PNG (needs -ac)")
	htmlPath   = flag.String("html", "", "write the interactive report as HTML")

	jsonFlag  = flag.Bool("json", false, "print the circuit characteristics as JSON and exit")
	latexFlag = flag.Bool("latex", false, "also print the solution as LaTeX")
	rowsFlag  = flag.Int("rows", 15, "table rows to print, 0 disables the tables")
)

func main() {
	flag.Parse()

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	// 1. Resolve parameters: defaults, then file, then flags.
	rec := params.Default()
	if *paramsPath != "" {
		var err error
		rec, err = params.Load(*paramsPath)
		if err != nil {
			log.Fatalf("Error reading parameter file: %v", err)
		}
	}
	if err := applyFlags(&rec, setFlags); err != nil {
		log.Fatalf("Error in flags: %v", err)
	}

	// 2. Build the circuit and the excitation.
	ckt, sig, err := rec.Build()
	if err != nil {
		log.Fatalf("Error building circuit: %v", err)
	}

	if *jsonFlag {
		data, err := json.MarshalIndent(ckt.Characteristics(), "", "  ")
		if err != nil {
			log.Fatalf("Error encoding characteristics: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println(ckt.String())
	fmt.Printf("Input: %s\n", describeSignal(sig))

	// 3. Solve the transient response.
	res, err := solver.New().Solve(ckt, sig)
	if err != nil {
		log.Fatalf("Error solving transient: %v", err)
	}

	if res.Inverted {
		fmt.Printf("\ni(t) = %s\n", res.Symbolic)
	} else {
		fmt.Printf("\nNo closed form found, integrated numerically.\nI(s) = %s\n", res.Symbolic)
	}
	if *latexFlag {
		fmt.Printf("LaTeX: %s\n", res.Symbolic.LaTeX())
	}

	if *rowsFlag > 0 {
		printSamples(res, *rowsFlag)
	}

	// 4. Optional AC sweep.
	var resp *analysis.Response
	if *acFlag {
		resp = runSweep(ckt)
	}

	// 5. File outputs.
	writeOutputs(res, resp)

	// 6. Persist the resolved parameters.
	if *savePath != "" {
		if err := params.Save(*savePath, params.FromInputs(ckt, sig)); err != nil {
			log.Fatalf("Error writing parameter file: %v", err)
		}
		fmt.Printf("Wrote %s\n", *savePath)
	}
}

func applyFlags(rec *params.Record, set map[string]bool) error {
	if *rFlag != "" {
		v, err := params.ParseValue(*rFlag)
		if err != nil {
			return fmt.Errorf("-r: %v", err)
		}
		rec.R = v
	}
	if *lFlag != "" {
		v, err := params.ParseValue(*lFlag)
		if err != nil {
			return fmt.Errorf("-l: %v", err)
		}
		rec.L = v
	}
	if *cFlag != "" {
		v, err := params.ParseValue(*cFlag)
		if err != nil {
			return fmt.Errorf("-c: %v", err)
		}
		rec.C = v
	}

	if *signalFlag != "" {
		rec.SignalType = *signalFlag
	}
	if set["amplitude"] {
		rec.SignalParams.Amplitude = *ampFlag
	}
	if *widthFlag != "" {
		v, err := params.ParseValue(*widthFlag)
		if err != nil {
			return fmt.Errorf("-width: %v", err)
		}
		rec.SignalParams.A = &v
	}
	if *delayFlag != "" {
		v, err := params.ParseValue(*delayFlag)
		if err != nil {
			return fmt.Errorf("-delay: %v", err)
		}
		rec.SignalParams.T0 = &v
	}
	return nil
}

func describeSignal(sig signal.Spec) string {
	desc := fmt.Sprintf("%s, amplitude %s", sig.Kind, util.FormatValueFactor(sig.Amplitude, "V"))
	switch sig.Kind {
	case signal.Pulse:
		desc += fmt.Sprintf(", width %s", util.FormatValueFactor(sig.Width, "s"))
	case signal.DelayedStep:
		desc += fmt.Sprintf(", delay %s", util.FormatValueFactor(sig.Delay, "s"))
	}
	return desc
}

func printSamples(res *solver.Result, rows int) {
	n := len(res.Time)
	step := n / rows
	if step < 1 {
		step = 1
	}

	fmt.Printf("\nTransient (%d points, dt = %s, %s):\n", n, util.FormatValueFactor(res.Dt, "s"), res.Method)
	fmt.Println("Time        Input        Current      V_R          V_L          V_C")
	fmt.Println("--------------------------------------------------------------------------")
	for i := 0; i < n; i += step {
		fmt.Printf("%-10s  %-11s  %-11s  %-11s  %-11s  %-11s\n",
			util.FormatValueFactor(res.Time[i], "s"),
			util.FormatValueFactor(res.Input[i], "V"),
			util.FormatValueFactor(res.Current[i], "A"),
			util.FormatValueFactor(res.VR[i], "V"),
			util.FormatValueFactor(res.VL[i], "V"),
			util.FormatValueFactor(res.VC[i], "V"))
	}
}

func runSweep(ckt *circuit.Circuit) *analysis.Response {
	sweep, err := analysis.ParseSweepType(*sweepFlag)
	if err != nil {
		log.Fatalf("Error in -sweep: %v", err)
	}
	fStart, err := params.ParseValue(*fstartFlag)
	if err != nil {
		log.Fatalf("Error in -fstart: %v", err)
	}
	fStop, err := params.ParseValue(*fstopFlag)
	if err != nil {
		log.Fatalf("Error in -fstop: %v", err)
	}

	resp, err := analysis.NewAC(sweep, fStart, fStop, *pointsFlag).Run(ckt)
	if err != nil {
		log.Fatalf("Error running AC sweep: %v", err)
	}

	fmt.Printf("\nAC sweep (%s, %d points), resonance at %s:\n",
		sweep, len(resp.Freq), util.FormatFrequency(ckt.F0()))
	if *rowsFlag > 0 {
		step := len(resp.Freq) / *rowsFlag
		if step < 1 {
			step = 1
		}
		fmt.Println("Frequency      |Z|           Phase        Loop current")
		fmt.Println("--------------------------------------------------------------")
		for i := 0; i < len(resp.Freq); i += step {
			fmt.Printf("%-13s  %-12s %s deg  %s\n",
				util.FormatFrequency(resp.Freq[i]),
				util.FormatValueFactor(resp.ZMag[i], "ohm"),
				util.FormatPhase(resp.ZPhase[i]),
				util.FormatMagnitudePhase("I", resp.IMag[i], resp.IPhase[i]))
		}
	}
	return resp
}

func writeOutputs(res *solver.Result, resp *analysis.Response) {
	if *csvPath != "" {
		if err := export.SaveCSV(*csvPath, res); err != nil {
			log.Fatalf("Error writing CSV: %v", err)
		}
		fmt.Printf("Wrote %s\n", *csvPath)
	}
	if *xlsxPath != "" {
		if err := export.SaveXLSX(*xlsxPath, res); err != nil {
			log.Fatalf("Error writing XLSX: %v", err)
		}
		fmt.Printf("Wrote %s\n", *xlsxPath)
	}
	if *acCsvPath != "" {
		if resp == nil {
			log.Fatal("-ac-csv needs -ac")
		}
		if err := export.SaveResponseCSV(*acCsvPath, resp); err != nil {
			log.Fatalf("Error writing sweep CSV: %v", err)
		}
		fmt.Printf("Wrote %s\n", *acCsvPath)
	}
	if *acXlsxPath != "" {
		if resp == nil {
			log.Fatal("-ac-xlsx needs -ac")
		}
		if err := export.SaveResponseXLSX(*acXlsxPath, resp); err != nil {
			log.Fatalf("Error writing sweep XLSX: %v", err)
		}
		fmt.Printf("Wrote %s\n", *acXlsxPath)
	}
	if *wavePath != "" {
		if err := plot.SaveWaveforms(*wavePath, res); err != nil {
			log.Fatalf("Error writing waveforms: %v", err)
		}
		fmt.Printf("Wrote %s\n", *wavePath)
	}
	if *phasePath != "" {
		if err := plot.SavePhase(*phasePath, res); err != nil {
			log.Fatalf("Error writing phase diagram: %v", err)
		}
		fmt.Printf("Wrote %s\n", *phasePath)
	}
	if *bodePath != "" {
		if resp == nil {
			log.Fatal("-bode needs -ac")
		}
		if err := plot.SaveFrequencyResponse(*bodePath, resp); err != nil {
			log.Fatalf("Error writing frequency response: %v", err)
		}
		fmt.Printf("Wrote %s\n", *bodePath)
	}
	if *htmlPath != "" {
		f, err := os.Create(*htmlPath)
		if err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		if err := plot.RenderHTML(f, res, resp); err != nil {
			f.Close()
			log.Fatalf("Error writing report: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		fmt.Printf("Wrote %s\n", *htmlPath)
	}
}
