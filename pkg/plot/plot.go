package plot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Marcelo07sd/rlc/pkg/analysis"
	"github.com/Marcelo07sd/rlc/pkg/solver"
)

var (
	colorInput   = color.RGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}
	colorCurrent = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	colorVR      = color.RGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
	colorVL      = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorVC      = color.RGBA{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}

	markerStart = color.RGBA{G: 0xA0, A: 0xFF}
	markerEnd   = color.RGBA{R: 0xD0, A: 0xFF}
)

// SaveWaveforms renders the transient charts as an aligned 2x2 grid:
// input, loop current, resistor voltage, and the inductor and capacitor
// voltages overlaid. The grid is always written as PNG.
func SaveWaveforms(path string, res *solver.Result) error {
	plots := make([][]*plot.Plot, 2)
	for i := range plots {
		plots[i] = make([]*plot.Plot, 2)
	}

	var err error
	if plots[0][0], err = linePlot("Input signal", "V(t) (V)", res.Time, res.Input, colorInput); err != nil {
		return err
	}
	if plots[0][1], err = linePlot("Loop current", "i(t) (A)", res.Time, res.Current, colorCurrent); err != nil {
		return err
	}
	if plots[1][0], err = linePlot("Resistor voltage", "V_R(t) (V)", res.Time, res.VR, colorVR); err != nil {
		return err
	}
	if plots[1][1], err = reactiveVoltagePlot(res); err != nil {
		return err
	}
	return writeTiled(path, plots, 10*vg.Inch, 7*vg.Inch)
}

// SaveCurrent writes a single chart of the loop current. The image format
// follows the file extension (.png, .svg, .pdf).
func SaveCurrent(path string, res *solver.Result) error {
	p, err := linePlot("Loop current", "i(t) (A)", res.Time, res.Current, colorCurrent)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

// SavePhase draws the phase portrait, loop current against capacitor
// voltage, with start and end markers.
func SavePhase(path string, res *solver.Result) error {
	p := plot.New()
	p.Title.Text = "Phase diagram"
	p.X.Label.Text = "V_C (V)"
	p.Y.Label.Text = "i(t) (A)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xyPoints(res.VC, res.Current, 1))
	if err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	line.Color = colorCurrent
	line.Width = vg.Points(1.5)
	p.Add(line)

	if n := len(res.VC); n > 0 {
		start, err := marker(res.VC[0], res.Current[0], markerStart)
		if err != nil {
			return err
		}
		end, err := marker(res.VC[n-1], res.Current[n-1], markerEnd)
		if err != nil {
			return err
		}
		p.Add(start, end)
		p.Legend.Add("start", start)
		p.Legend.Add("end", end)
		p.Legend.Top = true
	}

	if err := p.Save(7*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

// SaveFrequencyResponse writes the impedance sweep, magnitude above phase,
// both on a log frequency axis. The stacked grid is always written as PNG.
func SaveFrequencyResponse(path string, resp *analysis.Response) error {
	mag := plot.New()
	mag.Title.Text = "Frequency response"
	mag.Y.Label.Text = "|Z| (ohm)"
	logAxis(&mag.X)
	mag.Add(plotter.NewGrid())
	magLine, err := plotter.NewLine(xyPoints(resp.Freq, resp.ZMag, 1))
	if err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	magLine.Color = colorCurrent
	magLine.Width = vg.Points(1.5)
	mag.Add(magLine)

	ph := plot.New()
	ph.X.Label.Text = "frequency (Hz)"
	ph.Y.Label.Text = "phase (deg)"
	logAxis(&ph.X)
	ph.Add(plotter.NewGrid())
	phLine, err := plotter.NewLine(xyPoints(resp.Freq, resp.ZPhase, 1))
	if err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	phLine.Color = colorVL
	phLine.Width = vg.Points(1.5)
	ph.Add(phLine)

	plots := [][]*plot.Plot{{mag}, {ph}}
	return writeTiled(path, plots, 8*vg.Inch, 8*vg.Inch)
}

func linePlot(title, ylabel string, t, y []float64, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xyPoints(t, y, 1000))
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)
	return p, nil
}

func reactiveVoltagePlot(res *solver.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Inductor and capacitor voltages"
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "V (V)"
	p.Add(plotter.NewGrid())

	vl, err := plotter.NewLine(xyPoints(res.Time, res.VL, 1000))
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	vl.Color = colorVL
	vl.Width = vg.Points(1.5)

	vc, err := plotter.NewLine(xyPoints(res.Time, res.VC, 1000))
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	vc.Color = colorVC
	vc.Width = vg.Points(1.5)
	vc.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(vl, vc)
	p.Legend.Add("V_L(t)", vl)
	p.Legend.Add("V_C(t)", vc)
	p.Legend.Top = true
	return p, nil
}

func marker(x, y float64, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

func logAxis(ax *plot.Axis) {
	ax.Scale = plot.LogScale{}
	ax.Tick.Marker = plot.LogTicks{Prec: -1}
}

func xyPoints(x, y []float64, xscale float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i] * xscale
		pts[i].Y = y[i]
	}
	return pts
}

func writeTiled(path string, plots [][]*plot.Plot, w, h vg.Length) error {
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 2,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter,
		PadBottom: vg.Millimeter,
		PadLeft:   vg.Millimeter,
		PadRight:  vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}
