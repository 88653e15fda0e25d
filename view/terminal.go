package view

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/jbreitbart/kvplot/chart"
)

const (
	defaultTerminalHeight = 20
	defaultTerminalWidth  = 80
)

// Terminal draws the chart as text, one plotted line per series.
type Terminal struct {
	W      io.Writer
	Height int
	Width  int
}

func (t Terminal) Show(c *chart.Chart) error {
	w := t.W
	if w == nil {
		w = os.Stdout
	}
	height := t.Height
	if height <= 0 {
		height = defaultTerminalHeight
	}
	width := t.Width
	if width <= 0 {
		width = defaultTerminalWidth
	}

	var data [][]float64
	var labels []string
	samples := 0
	first, last := math.Inf(1), math.Inf(-1)
	for i := range c.Series {
		s := &c.Series[i]
		segments, err := s.Segments()
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			continue
		}

		// asciigraph leaves a gap for NaN
		ys := make([]float64, len(s.Y))
		for k, y := range s.Y {
			ys[k] = y
			if math.IsInf(y, 0) {
				ys[k] = math.NaN()
			}
		}
		data = append(data, ys)
		labels = append(labels, s.Label)
		samples = max(samples, len(ys))

		first = math.Min(first, segments[0][0].X)
		lastSeg := segments[len(segments)-1]
		last = math.Max(last, lastSeg[len(lastSeg)-1].X)
	}

	if len(data) == 0 {
		_, err := fmt.Fprintf(w, "%s\n(no data)\n", c.Title)
		return err
	}

	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(c.Title),
	}
	if cols := columns(c, first, last, width); cols > 1 {
		options = append(options, asciigraph.Width(cols))
	}
	graph := asciigraph.PlotMany(data, options...)
	if _, err := fmt.Fprintln(w, graph); err != nil {
		return err
	}

	if c.Legend {
		for _, l := range labels {
			if _, err := fmt.Fprintf(w, "  - %s\n", l); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "  %s: %d samples at %g .. %g", c.XAxisLabel, samples, first, last)
	if err != nil {
		return err
	}
	if len(c.XTickLabels) > 0 {
		_, err = fmt.Fprintf(w, ", axis %s .. %s", c.XTickLabels[0], c.XTickLabels[len(c.XTickLabels)-1])
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// columns returns the plot width that keeps the data at its share of the
// tick span. Zero or one means no interpolation, one column per sample.
func columns(c *chart.Chart, first, last float64, width int) int {
	if len(c.XTickPositions) < 2 {
		return width
	}
	span := c.XTickPositions[len(c.XTickPositions)-1] - c.XTickPositions[0]
	if span <= 0 {
		return width
	}
	cols := int(math.Round(float64(width)*(last-first)/span)) + 1
	return min(cols, width)
}
