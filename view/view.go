// Package view puts a chart in front of the user.
package view

import (
	"os"

	"github.com/jbreitbart/kvplot/chart"
	"github.com/pkg/errors"
)

// Viewer displays a chart. Show returns once the chart has been dismissed or
// written.
type Viewer interface {
	Show(c *chart.Chart) error
}

// Options configures the viewers returned by New.
type Options struct {
	Dir        string
	Format     string
	RunGnuplot bool

	// Window is returned for the "window" viewer. It lives in its own
	// package so that view does not link the GUI toolkit.
	Window Viewer
}

// New maps a viewer name to its implementation.
func New(name string, o Options) (Viewer, error) {
	switch name {
	case "window":
		if o.Window == nil {
			return nil, errors.New("window viewer is not available")
		}
		return o.Window, nil
	case "file":
		return File{Dir: o.Dir, Format: o.Format}, nil
	case "gnuplot":
		return Gnuplot{Dir: o.Dir, Run: o.RunGnuplot}, nil
	case "terminal":
		return Terminal{W: os.Stdout}, nil
	default:
		return nil, errors.Errorf("unknown viewer %q", name)
	}
}
