// Command plot-throughput charts the PUT throughput recorded in
// put_throughput.txt, one sample per line.
package main

import (
	"github.com/jbreitbart/kvplot/chart"
	"github.com/jbreitbart/kvplot/cli"
	"github.com/jbreitbart/kvplot/series"
	log "github.com/sirupsen/logrus"
)

const inputFile = "put_throughput.txt"

func main() {
	viewer := cli.ParseArgs()

	throughput, err := series.ReadFile(inputFile)
	if err != nil {
		log.WithError(err).Fatalln("Cannot read throughput file")
	}

	log.WithFields(log.Fields{
		"file":    inputFile,
		"samples": len(throughput),
		"plotted": min(len(throughput), chart.ThroughputLimit),
	}).Infoln("Read throughput samples")

	if err := viewer.Show(chart.Throughput(throughput)); err != nil {
		log.WithError(err).Fatalln("Cannot show chart")
	}
}
