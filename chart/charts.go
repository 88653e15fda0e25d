package chart

import (
	"image/color"
	"strconv"

	"github.com/jbreitbart/kvplot/dataset"
	"github.com/jbreitbart/kvplot/series"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

const (
	// ThroughputLimit is the number of operations shown by Throughput.
	ThroughputLimit = 10000
	// LatencyLimit is the number of operations shown by LatencyThroughput.
	LatencyLimit = 5000
	// TickStep is the operation count between x ticks.
	TickStep = 1000
)

const (
	largeFont  = vg.Length(24)
	titleFont  = vg.Length(14)
	axisFont   = vg.Length(12)
	normalFont = vg.Length(10)
)

// ComparisonPalette colors the data sizes of the comparison chart in order.
var ComparisonPalette = []color.Color{colornames.Blue, colornames.Green, colornames.Red, colornames.Purple}

// countTicks returns ticks every step operations from 0 to last inclusive.
func countTicks(last int, step int) ([]float64, []string) {
	var positions []float64
	var labels []string
	for i := 0; i <= last; i += step {
		positions = append(positions, float64(i))
		labels = append(labels, strconv.Itoa(i))
	}
	return positions, labels
}

// Throughput charts the first ThroughputLimit PUT throughput samples.
func Throughput(values []float64) *Chart {
	positions, labels := countTicks(ThroughputLimit, TickStep)

	return &Chart{
		Title:          "PUT Operation throughput Over Time",
		XAxisLabel:     "Cumulative Operation Count",
		YAxisLabel:     "throughput (Mops/sec)",
		TitleSize:      largeFont,
		LabelSize:      largeFont,
		TickSize:       largeFont,
		LegendSize:     largeFont,
		XTickLabels:    labels,
		XTickPositions: positions,
		Series: []Series{
			{Label: "PUT throughput", Y: series.Head(values, ThroughputLimit)},
		},
		Legend:       true,
		Grid:         true,
		FileBasename: "put_throughput",
	}
}

// LatencyThroughput charts the throughput implied by the first LatencyLimit
// PUT latencies. A zero latency fails with series.ErrZeroLatency.
func LatencyThroughput(latencies []float64) (*Chart, error) {
	throughput, err := series.Reciprocal(series.Head(latencies, LatencyLimit))
	if err != nil {
		return nil, err
	}

	positions, labels := countTicks(LatencyLimit, TickStep)

	return &Chart{
		Title:          "PUT Operation Throughput Over Time",
		XAxisLabel:     "Cumulative Operation Count",
		YAxisLabel:     "Throughput (Mops/sec)",
		TitleSize:      largeFont,
		LabelSize:      largeFont,
		TickSize:       largeFont,
		LegendSize:     largeFont,
		XTickLabels:    labels,
		XTickPositions: positions,
		Series: []Series{
			{Label: "PUT throughput", Y: throughput},
		},
		Legend:       true,
		Grid:         true,
		FileBasename: "put_latency_throughput",
	}, nil
}

// Comparison draws one line per data size across the operation types of t.
func Comparison(t dataset.Table) *Chart {
	positions := make([]float64, len(dataset.Operations))
	for i := range positions {
		positions[i] = float64(i)
	}

	c := &Chart{
		Title:          "Operation Throughput for Different Data Sizes (3 larger cases)",
		XAxisLabel:     "Operation Type",
		YAxisLabel:     "Throughput (ops/sec)",
		TitleSize:      titleFont,
		LabelSize:      axisFont,
		TickSize:       normalFont,
		LegendSize:     normalFont,
		XTickLabels:    dataset.Operations[:],
		XTickPositions: positions,
		Legend:         true,
		Grid:           true,
		FileBasename:   "throughput_comparison",
	}

	for i, r := range t {
		c.Series = append(c.Series, Series{
			Label:  "Data Size=" + r.Size,
			X:      positions,
			Y:      append([]float64(nil), r.Values[:]...),
			Color:  ComparisonPalette[i%len(ComparisonPalette)],
			Points: true,
		})
	}

	return c
}
