package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"YieldSentinel/internal/log"
	"YieldSentinel/internal/series"
)

var referenceColor = color.RGBA{R: 220, A: 255}

// FileRenderer writes the chart to Path as PNG or SVG, picked by extension.
// The primary axis is drawn in the upper panel and the secondary axis in a
// lower panel sharing the same date range.
type FileRenderer struct {
	Path       string
	Width      vg.Length
	Height     vg.Length
	DateFormat string
}

// NewFileRenderer creates a renderer with the original 10x5 inch figure size.
func NewFileRenderer(path string) *FileRenderer {
	return &FileRenderer{
		Path:       path,
		Width:      10 * vg.Inch,
		Height:     5 * vg.Inch,
		DateFormat: "2006-01",
	}
}

func (r *FileRenderer) Render(c *Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	xs := make([]float64, len(c.Dates))
	for i, d := range c.Dates {
		xs[i] = float64(d.Unix())
	}
	xmin, xmax := xs[0], xs[0]
	for _, x := range xs {
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
	}

	primary := r.newPlot(c.Title, c.LeftLabel, xmin, xmax)
	primary.X.Tick.Label.Color = color.Transparent
	if err := addLines(primary, xs, c.Left, 0); err != nil {
		return err
	}

	secondary := r.newPlot("", c.RightLabel, xmin, xmax)
	secondary.X.Label.Text = c.XLabel
	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = referenceColor
	zero.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	secondary.Add(zero)
	if err := addLines(secondary, xs, c.Right, len(c.Left)); err != nil {
		return err
	}

	canvas, out, err := newCanvas(r.Path, r.Width, r.Height)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	plots := [][]*plot.Plot{{primary}, {secondary}}
	canvases := plot.Align(plots, tiles, draw.New(canvas))
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if _, err := out.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	log.Infof("chart written to %s (%d dates, %s to %s)", r.Path, len(c.Dates),
		c.Dates[0].Format(series.DateLayout), c.Dates[len(c.Dates)-1].Format(series.DateLayout))
	return nil
}

func (r *FileRenderer) newPlot(title, ylabel string, xmin, xmax float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.X.Min, p.X.Max = xmin, xmax
	p.X.Tick.Marker = plot.TimeTicks{Format: r.DateFormat}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func addLines(p *plot.Plot, xs []float64, lines []Line, colorOffset int) error {
	for i, l := range lines {
		pts := make(plotter.XYs, len(xs))
		for k := range xs {
			pts[k].X = xs[k]
			pts[k].Y = l.Values[k]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line %q: %w", l.Label, err)
		}
		line.Color = plotutil.Color(i + colorOffset)
		p.Add(line)
		p.Legend.Add(l.Label, line)
	}
	return nil
}

func newCanvas(path string, w, h vg.Length) (vg.CanvasSizer, io.WriterTo, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		c := vgimg.New(w, h)
		return c, vgimg.PngCanvas{Canvas: c}, nil
	case ".svg":
		c := vgsvg.New(w, h)
		return c, c, nil
	default:
		return nil, nil, fmt.Errorf("unsupported chart format %q", ext)
	}
}
