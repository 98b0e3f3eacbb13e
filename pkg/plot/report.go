package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Marcelo07sd/rlc/pkg/analysis"
	"github.com/Marcelo07sd/rlc/pkg/solver"
	"github.com/Marcelo07sd/rlc/pkg/util"
)

// RenderHTML writes an interactive report page. The transient charts come
// from res, the sweep charts from resp. Either may be nil, not both.
func RenderHTML(w io.Writer, res *solver.Result, resp *analysis.Response) error {
	if res == nil && resp == nil {
		return errors.New("plot: nothing to render")
	}

	page := components.NewPage()
	if res != nil {
		page.AddCharts(currentChart(res), voltageChart(res))
	}
	if resp != nil {
		page.AddCharts(impedanceChart(resp), phaseChart(resp))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

func newLineChart(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll"}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

func currentChart(res *solver.Result) *charts.Line {
	line := newLineChart("Transient response", solutionLabel(res))
	line.SetXAxis(msLabels(res.Time)).
		AddSeries("input (V)", lineData(res.Input)).
		AddSeries("i(t) (A)", lineData(res.Current))
	return line
}

func voltageChart(res *solver.Result) *charts.Line {
	line := newLineChart("Element voltages", "time in ms")
	line.SetXAxis(msLabels(res.Time)).
		AddSeries("V_R (V)", lineData(res.VR)).
		AddSeries("V_L (V)", lineData(res.VL)).
		AddSeries("V_C (V)", lineData(res.VC))
	return line
}

func impedanceChart(resp *analysis.Response) *charts.Line {
	line := newLineChart("Impedance magnitude", "series RLC sweep")
	line.SetXAxis(freqLabels(resp.Freq)).
		AddSeries("|Z| (ohm)", lineData(resp.ZMag))
	return line
}

func phaseChart(resp *analysis.Response) *charts.Line {
	line := newLineChart("Impedance phase", "series RLC sweep")
	line.SetXAxis(freqLabels(resp.Freq)).
		AddSeries("phase (deg)", lineData(resp.ZPhase))
	return line
}

func solutionLabel(res *solver.Result) string {
	if res.Symbolic == nil {
		return ""
	}
	if res.Inverted {
		return "i(t) = " + res.Symbolic.String()
	}
	return "I(s) = " + res.Symbolic.String() + "  (solved numerically)"
}

func lineData(ys []float64) []opts.LineData {
	items := make([]opts.LineData, len(ys))
	for i, v := range ys {
		items[i] = opts.LineData{Value: v}
	}
	return items
}

func msLabels(t []float64) []string {
	labels := make([]string, len(t))
	for i, v := range t {
		labels[i] = fmt.Sprintf("%.3f", v*1000)
	}
	return labels
}

func freqLabels(f []float64) []string {
	labels := make([]string, len(f))
	for i, v := range f {
		labels[i] = util.FormatFrequency(v)
	}
	return labels
}
