package view

import (
	"github.com/jbreitbart/kvplot/chart"
	log "github.com/sirupsen/logrus"
)

// File saves the chart instead of displaying it.
type File struct {
	Dir    string
	Format string
}

func (f File) Show(c *chart.Chart) error {
	format := f.Format
	if format == "" {
		format = "svg"
	}

	filename, err := c.Save(f.Dir, format)
	if err != nil {
		return err
	}

	log.WithField("file", filename).Infoln("Chart written")
	return nil
}
