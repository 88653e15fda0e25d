// Command plot-compare charts PUT, GET, DEL and SCAN throughput for every
// measured data size.
package main

import (
	"github.com/jbreitbart/kvplot/chart"
	"github.com/jbreitbart/kvplot/cli"
	"github.com/jbreitbart/kvplot/dataset"
	log "github.com/sirupsen/logrus"
)

func main() {
	viewer := cli.ParseArgs()

	log.Infoln("Found data for the following data sizes:")
	for i, size := range dataset.Throughput.Sizes() {
		log.WithFields(log.Fields{
			"size": size,
		}).Infof("%v", i)
	}

	if err := viewer.Show(chart.Comparison(dataset.Throughput)); err != nil {
		log.WithError(err).Fatalln("Cannot show chart")
	}
}
