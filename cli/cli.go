// Package cli holds the command line handling shared by the plot programs.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jbreitbart/kvplot/view"
	"github.com/jbreitbart/kvplot/view/window"
	log "github.com/sirupsen/logrus"
)

// global command line parameters
var viewerName *string
var outDir *string
var format *string
var runGnuplot *bool
var verbose *bool

// ParseArgs parses the command line, sets up logging and returns the viewer
// selected with -viewer.
func ParseArgs() view.Viewer {
	viewerName = flag.String("viewer", "window", "How to show the chart: window, file, gnuplot or terminal")
	outDir = flag.String("out", "charts", "Output directory of the file and gnuplot viewers")
	format = flag.String("format", "svg", "Image format of the file viewer (svg, png, pdf, ...)")
	runGnuplot = flag.Bool("run-gnuplot", false, "Run gnuplot on the generated script")
	verbose = flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	setupLogging(*verbose)

	v, err := view.New(*viewerName, view.Options{
		Dir:        *outDir,
		Format:     *format,
		RunGnuplot: *runGnuplot,
		Window:     window.Viewer{},
	})
	if err != nil {
		log.WithError(err).Fatalln("Invalid -viewer")
	}
	return v
}

func setupLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
