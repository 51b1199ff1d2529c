package main

import (
	"fmt"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Muran-prog/Mu-Sim/io"
	"github.com/Muran-prog/Mu-Sim/telemetry"
)

var (
	colors = []string{
		"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
		"DarkViolet", "DeepPink", "DimGray",
	}
)

// sweepMargin is the fraction of the X range sampled past each end of the
// axis, so that clamping is visible in plots.
const sweepMargin = 0.1

type curve struct {
	Label string
	Ys    []float64
}

// sweepResult holds a table sampled along X. Tables with more than one
// dimension give one curve for every breakpoint of the remaining axes.
type sweepResult struct {
	Name   string
	Units  io.Units
	Xs     []float64
	Curves []curve
}

// sweepTable samples the named table at n points along X. Samples pass
// through a telemetry recorder the same way they would in a running
// simulation.
func sweepTable(tabs *io.Tables, name string, n int) (*sweepResult, error) {
	var (
		xAxis  []float64
		labels []string
		eval   []func(xs, out []float64) []float64
	)
	u := tabs.Units[name]

	switch tabs.Dims(name) {
	case 0:
		return nil, fmt.Errorf(
			"No table named '%s'. Known tables are: %s.",
			name, strings.Join(tabs.Names(), ", "),
		)
	case 1:
		lut := tabs.Lut1D[name]
		xAxis = lut.XAxis()
		labels = append(labels, name)
		eval = append(eval, func(xs, out []float64) []float64 {
			return lut.LookupAll(xs, out)
		})
	case 2:
		lut := tabs.Lut2D[name]
		xAxis = lut.XAxis()
		for _, y := range lut.YAxis() {
			ys := fill(n, y)
			labels = append(labels, fmt.Sprintf("Y = %g%s", y, suffix(u.Y)))
			eval = append(eval, func(xs, out []float64) []float64 {
				return lut.LookupAll(xs, ys, out)
			})
		}
	case 3:
		lut := tabs.Lut3D[name]
		xAxis = lut.XAxis()
		for _, z := range lut.ZAxis() {
			for _, y := range lut.YAxis() {
				ys, zs := fill(n, y), fill(n, z)
				labels = append(labels, fmt.Sprintf(
					"Y = %g%s, Z = %g%s", y, suffix(u.Y), z, suffix(u.Z),
				))
				eval = append(eval, func(xs, out []float64) []float64 {
					return lut.LookupAll(xs, ys, zs, out)
				})
			}
		}
	}

	rec := telemetry.NewMemoryRecorder(telemetry.RingBufferConfig{
		SamplesPerChannel: n, MaxChannels: len(eval) + 1,
	})
	xID := rec.RegisterChannel("x", u.X)
	ids := make([]telemetry.ChannelID, len(eval))
	for i := range ids {
		ids[i] = rec.RegisterChannel(labels[i], u.Value)
		if ids[i] == telemetry.InvalidChannel {
			return nil, fmt.Errorf("Could not register channel '%s'.", labels[i])
		}
	}

	xs := sampleRange(xAxis, n)
	out := make([]float64, n)
	for i := range xs {
		rec.Log(xID, xs[i])
	}
	for i := range eval {
		for _, v := range eval[i](xs, out) {
			rec.Log(ids[i], v)
		}
	}

	s := &sweepResult{Name: name, Units: u}
	s.Xs, _ = rec.ChannelData(xID)
	for _, id := range ids {
		meta, _ := rec.Metadata(id)
		ys, _ := rec.ChannelData(id)
		s.Curves = append(s.Curves, curve{Label: meta.Name, Ys: ys})
	}
	return s, nil
}

// sampleRange returns n evenly spaced points covering the axis plus a margin
// on each side.
func sampleRange(axis []float64, n int) []float64 {
	lo, hi := axis[0], axis[len(axis)-1]
	margin := sweepMargin * (hi - lo)
	if margin == 0 {
		margin = 1
	}
	lo, hi = lo-margin, hi+margin

	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

func fill(n int, x float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}

func suffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}

func axisLabel(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, unit)
}

// plotGonum renders s to fname. The image format is taken from the file
// extension.
func plotGonum(s *sweepResult, fname string) error {
	p := plot.New()
	p.Title.Text = s.Name
	p.X.Label.Text = axisLabel("X", s.Units.X)
	p.Y.Label.Text = axisLabel(s.Name, s.Units.Value)
	p.Add(plotter.NewGrid())

	for i, c := range s.Curves {
		pts := make(plotter.XYs, len(s.Xs))
		for j := range pts {
			pts[j] = plotter.XY{X: s.Xs[j], Y: c.Ys[j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		if len(s.Curves) > 1 {
			p.Legend.Add(c.Label, line)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p.Save(8*vg.Inch, 6*vg.Inch, fname)
}

// plotPyplot renders s to fname with matplotlib.
func plotPyplot(s *sweepResult, fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 6))
	for i, c := range s.Curves {
		plt.Plot(s.Xs, c.Ys, plt.LW(2), plt.C(colors[i%len(colors)]))
	}

	plt.Title(s.Name)
	plt.XLabel(axisLabel("X", s.Units.X), plt.FontSize(16))
	plt.YLabel(axisLabel(s.Name, s.Units.Value), plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
	plt.Execute()
}
