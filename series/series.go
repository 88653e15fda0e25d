// Package series reads benchmark series stored as one number per line and
// applies the small transforms the charts need.
package series

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrZeroLatency is returned by Reciprocal for a zero input value.
var ErrZeroLatency = errors.New("zero latency has no throughput")

// Read parses one float64 per line from r. Blank lines are skipped and
// surrounding whitespace is ignored. The first line that is not a number
// aborts the read.
func Read(r io.Reader) ([]float64, error) {
	values := []float64{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		temp := strings.TrimSpace(scanner.Text())
		if len(temp) == 0 {
			continue
		}

		v, err := strconv.ParseFloat(temp, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: %q", line, temp)
		}
		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning series")
	}

	return values, nil
}

// ReadFile is Read on the named file.
func ReadFile(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	values, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}
	return values, nil
}

// Head returns the first n values, or all of them if there are fewer.
func Head(values []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if len(values) < n {
		return values
	}
	return values[:n]
}

// Reciprocal maps every value x to 1/x, turning per-operation latencies into
// throughput.
func Reciprocal(values []float64) ([]float64, error) {
	ret := make([]float64, len(values))
	for i, v := range values {
		if v == 0 {
			return nil, errors.Wrapf(ErrZeroLatency, "value %d", i)
		}
		ret[i] = 1 / v
	}
	return ret, nil
}
