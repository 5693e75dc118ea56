package experiment

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSweep renders measured and ideal pass rates against the middle filter
// angle. The image format follows the file extension (png, svg, pdf, ...).
func PlotSweep(points []SweepPoint, path string) error {
	measured := make(plotter.XYs, len(points))
	expected := make(plotter.XYs, len(points))
	for i, p := range points {
		measured[i] = plotter.XY{X: p.Degrees, Y: p.Rate}
		expected[i] = plotter.XY{X: p.Degrees, Y: p.Expected}
	}

	p := plot.New()
	p.Title.Text = "[0° → θ → 90°] pass rate"
	p.X.Label.Text = "θ (degrees)"
	p.Y.Label.Text = "fraction passed"
	p.Add(plotter.NewGrid())

	ideal, err := plotter.NewLine(expected)
	if err != nil {
		return fmt.Errorf("ideal curve: %w", err)
	}
	ideal.Color = color.RGBA{B: 200, A: 255}

	dots, err := plotter.NewScatter(measured)
	if err != nil {
		return fmt.Errorf("measured points: %w", err)
	}
	dots.GlyphStyle.Color = color.RGBA{R: 200, A: 255}

	p.Add(ideal, dots)
	p.Legend.Add("cos²θ·sin²θ/2", ideal)
	p.Legend.Add("simulated", dots)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
