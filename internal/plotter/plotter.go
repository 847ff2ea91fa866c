package plotter

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"risecli/internal/dataprocessing"
)

// axisColors are the line colors for the X, Y and Z sub-plots.
var axisColors = [3]color.RGBA{
	{R: 200, A: 255},
	{G: 160, A: 255},
	{B: 200, A: 255},
}

// axisTitles are the sub-plot titles for the corrected series.
var axisTitles = [3]string{"X-axis Corrected", "Y-axis Corrected", "Z-axis Corrected"}

// PlotCorrected renders the three corrected axes to a PNG at the given path,
// one sub-plot per axis against the zeroed time column. Baseline correction
// must have been applied first.
func PlotCorrected(rec *dataprocessing.Recording, path string) error {
	if !rec.IsCorrected() {
		return fmt.Errorf("plot: %w (apply baseline correction first)", dataprocessing.ErrNotCorrected)
	}

	plots := make([][]*plot.Plot, 3)
	for i := range plots {
		p := plot.New()
		p.Title.Text = axisTitles[i]
		p.X.Label.Text = "Time (seconds)"
		p.Y.Label.Text = "Amplitude"
		p.Add(plotter.NewGrid())

		pts := make(plotter.XYs, rec.Len())
		for j := 0; j < rec.Len(); j++ {
			pts[j].X = rec.SecondsZeroed[j]
			pts[j].Y = rec.Axes[i].Corrected[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", rec.Axes[i].Name, err)
		}
		line.Color = axisColors[i]
		p.Add(line)

		plots[i] = []*plot.Plot{p}
	}

	const width, height = 8 * vg.Inch, 12 * vg.Inch
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 3,
		Cols: 1,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}

	slog.Info("Plot written",
		slog.String("path", path),
		slog.Int("samples", rec.Len()))

	return nil
}
