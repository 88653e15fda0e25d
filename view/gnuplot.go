package view

import (
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jbreitbart/kvplot/chart"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
)

// Gnuplot writes the chart as a gnuplot data file plus script. With Run set
// the script is executed and Show waits for the gnuplot window to close.
type Gnuplot struct {
	Dir string
	Run bool
}

func (g Gnuplot) Show(c *chart.Chart) error {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return errors.WithStack(err)
	}

	datFile := datFilename(c)
	indexes, err := writeDatFile(filepath.Join(g.Dir, datFile), c)
	if err != nil {
		return err
	}

	script, err := gnuplotScript(c, datFile, indexes)
	if err != nil {
		return err
	}

	plotFile := plotFilename(c)
	err = os.WriteFile(filepath.Join(g.Dir, plotFile), []byte(script), 0644)
	if err != nil {
		return errors.Wrapf(err, "Error while writing file %v", plotFile)
	}

	log.WithFields(log.Fields{
		"data":   filepath.Join(g.Dir, datFile),
		"script": filepath.Join(g.Dir, plotFile),
	}).Infoln("Gnuplot files written")

	if !g.Run {
		return nil
	}
	return runGnuplot(g.Dir, plotFile)
}

func datFilename(c *chart.Chart) string {
	return c.FileBasename + ".dat"
}

func plotFilename(c *chart.Chart) string {
	return c.FileBasename + ".plot"
}

// writeDatFile writes one data block per series with finite values. The
// returned slice holds the gnuplot index of each series, or -1 for series
// without any.
func writeDatFile(filename string, c *chart.Chart) ([]int, error) {
	var out strings.Builder
	out.WriteString("# " + c.Title + "\n")

	indexes := make([]int, len(c.Series))
	next := 0
	for i := range c.Series {
		s := &c.Series[i]
		segments, err := s.Segments()
		if err != nil {
			return nil, err
		}
		if len(segments) == 0 {
			indexes[i] = -1
			continue
		}

		if next > 0 {
			// two blank lines start a new gnuplot index
			out.WriteString("\n\n")
		}
		out.WriteString("# " + s.Label + "\n")
		out.WriteString("# " + c.XAxisLabel + " " + c.YAxisLabel + "\n")
		for k, seg := range segments {
			if k > 0 {
				// one blank line breaks the line within an index
				out.WriteString("\n")
			}
			for _, xy := range seg {
				out.WriteString(strconv.FormatFloat(xy.X, 'E', -1, 64) + " " + strconv.FormatFloat(xy.Y, 'E', -1, 64) + "\n")
			}
		}

		indexes[i] = next
		next++
	}

	if err := os.WriteFile(filename, []byte(out.String()), 0644); err != nil {
		return nil, errors.Wrapf(err, "Error while writing file %v", filename)
	}
	return indexes, nil
}

func gnuplotScript(c *chart.Chart, datFile string, indexes []int) (string, error) {
	if len(c.XTickLabels) != len(c.XTickPositions) {
		return "", errors.Errorf("%d x tick labels for %d positions", len(c.XTickLabels), len(c.XTickPositions))
	}

	var ret strings.Builder

	ret.WriteString("set title " + quote(c.Title) + font(c.TitleSize) + "\n")
	ret.WriteString("set xlabel " + quote(c.XAxisLabel) + font(c.LabelSize) + "\n")
	ret.WriteString("set ylabel " + quote(c.YAxisLabel) + font(c.LabelSize) + "\n")

	if len(c.XTickPositions) > 0 {
		tics := make([]string, len(c.XTickPositions))
		for i, x := range c.XTickPositions {
			tics[i] = quote(c.XTickLabels[i]) + " " + strconv.FormatFloat(x, 'g', -1, 64)
		}
		ret.WriteString("set xtics (" + strings.Join(tics, ", ") + ")" + font(c.TickSize) + "\n")
	}
	if c.TickSize > 0 {
		ret.WriteString("set ytics" + font(c.TickSize) + "\n")
	}

	if markers(c) {
		ret.WriteString("set offsets graph 0.05, graph 0.05, 0, 0\n")
	} else if len(c.XTickPositions) > 0 {
		ret.WriteString(fmt.Sprintf("set xrange [%v:%v]\n", c.XTickPositions[0], c.XTickPositions[len(c.XTickPositions)-1]))
	}

	if c.Legend {
		ret.WriteString("set key top right" + font(c.LegendSize) + "\n")
	} else {
		ret.WriteString("unset key\n")
	}
	if c.Grid {
		ret.WriteString("set grid\n")
	}

	var plots []string
	for i := range c.Series {
		s := &c.Series[i]

		style := "lines"
		if s.Points {
			style = "linespoints pt 7"
		}
		style += " lw 2 lc rgb '" + hexColor(c.SeriesColor(i)) + "'"

		title := "notitle"
		if c.Legend && s.Label != "" {
			title = "title " + quote(s.Label)
		}

		if indexes[i] < 0 {
			// keeps the legend entry of an empty series
			plots = append(plots, "NaN with "+style+" "+title)
			continue
		}
		plots = append(plots, quote(datFile)+" index "+strconv.Itoa(indexes[i])+" using 1:2 with "+style+" "+title)
	}
	if len(plots) == 0 {
		plots = append(plots, "NaN notitle")
	}
	ret.WriteString("plot " + strings.Join(plots, ", \\\n     ") + "\n")

	ret.WriteString("pause mouse close\n")

	return ret.String(), nil
}

func markers(c *chart.Chart) bool {
	for _, s := range c.Series {
		if s.Points {
			return true
		}
	}
	return false
}

// quote returns s as a single quoted gnuplot string.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func font(size vg.Length) string {
	if size <= 0 {
		return ""
	}
	return " font '," + strconv.FormatFloat(float64(size), 'g', -1, 64) + "'"
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func runGnuplot(dir string, script string) error {
	gnuplotBin, err := exec.LookPath("gnuplot")
	if err != nil {
		return errors.Wrap(err, "gnuplot is not installed")
	}

	cmd := exec.Command(gnuplotBin, script)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.WithField("script", script).Debugln("Running gnuplot")
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "Error running gnuplot on %v", script)
	}
	return nil
}
