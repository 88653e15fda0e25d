// Command plot-latency charts the PUT throughput implied by the per-operation
// latencies in put_latency.txt.
package main

import (
	"github.com/jbreitbart/kvplot/chart"
	"github.com/jbreitbart/kvplot/cli"
	"github.com/jbreitbart/kvplot/series"
	log "github.com/sirupsen/logrus"
)

const inputFile = "put_latency.txt"

func main() {
	viewer := cli.ParseArgs()

	latencies, err := series.ReadFile(inputFile)
	if err != nil {
		log.WithError(err).Fatalln("Cannot read latency file")
	}

	log.WithFields(log.Fields{
		"file":    inputFile,
		"samples": len(latencies),
		"plotted": min(len(latencies), chart.LatencyLimit),
	}).Infoln("Read latency samples")

	c, err := chart.LatencyThroughput(latencies)
	if err != nil {
		log.WithError(err).Fatalln("Cannot convert latencies to throughput")
	}

	if err := viewer.Show(c); err != nil {
		log.WithError(err).Fatalln("Cannot show chart")
	}
}
