// Package chart describes the benchmark figures and renders them with
// gonum/plot.
package chart

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 6 * vg.Inch
)

// Series is one line of a chart.
type Series struct {
	Label string

	// X holds the x position of every value. Nil means the value index.
	X []float64
	Y []float64

	// Color of the line and markers. Nil picks a color by series index.
	Color color.Color

	// Points draws a circle marker on every value.
	Points bool
}

// XYs pairs the series values with their x positions.
func (s *Series) XYs() (plotter.XYs, error) {
	if s.X != nil && len(s.X) != len(s.Y) {
		return nil, errors.Errorf("series %q has %d x positions for %d values", s.Label, len(s.X), len(s.Y))
	}

	xys := make(plotter.XYs, len(s.Y))
	for i, y := range s.Y {
		xys[i].X = float64(i)
		if s.X != nil {
			xys[i].X = s.X[i]
		}
		xys[i].Y = y
	}
	return xys, nil
}

// Segments splits the series into runs of finite points. NaN and infinite
// values leave a gap in the line.
func (s *Series) Segments() ([]plotter.XYs, error) {
	xys, err := s.XYs()
	if err != nil {
		return nil, err
	}

	var segments []plotter.XYs
	start := -1
	for i, xy := range xys {
		if finite(xy.X) && finite(xy.Y) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			segments = append(segments, xys[start:i])
			start = -1
		}
	}
	if start >= 0 {
		segments = append(segments, xys[start:])
	}
	return segments, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Chart is everything needed to draw one figure.
type Chart struct {
	Title      string
	XAxisLabel string
	YAxisLabel string

	// Font sizes; zero keeps the gonum/plot default.
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length

	// Fixed x ticks. The x axis always spans all of them.
	XTickLabels    []string
	XTickPositions []float64

	Series []Series
	Legend bool
	Grid   bool

	Width  vg.Length
	Height vg.Length

	FileBasename string
}

func (c *Chart) size() (vg.Length, vg.Length) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// SeriesColor returns the color of series i, falling back to the plotutil
// default palette.
func (c *Chart) SeriesColor(i int) color.Color {
	if col := c.Series[i].Color; col != nil {
		return col
	}
	return plotutil.Color(i)
}

func (c *Chart) setupPlot() (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = c.Title
	p.X.Label.Text = c.XAxisLabel
	p.Y.Label.Text = c.YAxisLabel

	if c.TitleSize > 0 {
		p.Title.TextStyle.Font.Size = c.TitleSize
	}
	if c.LabelSize > 0 {
		p.X.Label.TextStyle.Font.Size = c.LabelSize
		p.Y.Label.TextStyle.Font.Size = c.LabelSize
	}
	if c.TickSize > 0 {
		p.X.Tick.Label.Font.Size = c.TickSize
		p.Y.Tick.Label.Font.Size = c.TickSize
	}
	if c.LegendSize > 0 {
		p.Legend.TextStyle.Font.Size = c.LegendSize
	}

	if len(c.XTickLabels) != len(c.XTickPositions) {
		return nil, errors.Errorf("%d x tick labels for %d positions", len(c.XTickLabels), len(c.XTickPositions))
	}
	if len(c.XTickPositions) > 0 {
		xTicks := make([]plot.Tick, len(c.XTickPositions))
		for i := range xTicks {
			xTicks[i].Value = c.XTickPositions[i]
			xTicks[i].Label = c.XTickLabels[i]
		}
		p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	}

	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.BackgroundColor = color.White

	if c.Grid {
		p.Add(plotter.NewGrid())
	}

	return p, nil
}

// Plot builds the gonum plot for the chart. A series without finite values
// keeps its legend entry but draws nothing.
func (c *Chart) Plot() (*plot.Plot, error) {
	p, err := c.setupPlot()
	if err != nil {
		return nil, err
	}

	for i := range c.Series {
		s := &c.Series[i]
		segments, err := s.Segments()
		if err != nil {
			return nil, err
		}

		col := c.SeriesColor(i)

		// legend entry, also for series without finite points
		thumb := &plotter.Line{LineStyle: plotter.DefaultLineStyle}
		thumb.Color = col
		thumb.Width = vg.Points(1.5)
		thumbs := []plot.Thumbnailer{thumb}

		var finitePoints plotter.XYs
		for _, seg := range segments {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, errors.Wrapf(err, "series %q", s.Label)
			}
			line.LineStyle = thumb.LineStyle
			p.Add(line)
			finitePoints = append(finitePoints, seg...)
		}

		if s.Points {
			points, err := plotter.NewScatter(finitePoints)
			if err != nil {
				return nil, errors.Wrapf(err, "series %q", s.Label)
			}
			points.Shape = draw.CircleGlyph{}
			points.Color = col
			points.Radius = vg.Points(3)
			thumbs = append(thumbs, points)
			if len(finitePoints) > 0 {
				p.Add(points)
			}
		}

		if c.Legend && s.Label != "" {
			p.Legend.Add(s.Label, thumbs...)
		}
	}

	for _, x := range c.XTickPositions {
		p.X.Min = math.Min(p.X.Min, x)
		p.X.Max = math.Max(p.X.Max, x)
	}

	return p, nil
}

// Image rasterises the chart at its configured size.
func (c *Chart) Image() (image.Image, error) {
	p, err := c.Plot()
	if err != nil {
		return nil, err
	}

	w, h := c.size()
	img := vgimg.New(w, h)
	p.Draw(draw.New(img))
	return img.Image(), nil
}

// Save writes the chart to dir as <FileBasename>.<format> and returns the
// file name. Any format supported by plot.Save works (svg, png, pdf, ...).
func (c *Chart) Save(dir string, format string) (string, error) {
	p, err := c.Plot()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WithStack(err)
	}

	filename := filepath.Join(dir, c.FileBasename+"."+format)
	w, h := c.size()
	if err := p.Save(w, h, filename); err != nil {
		return "", errors.Wrapf(err, "saving %v", filename)
	}

	return filename, nil
}
