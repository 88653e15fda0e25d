// Package dataset holds the key-value store throughput measured per data size.
package dataset

// Operations are the measured operation types, in column order.
var Operations = [4]string{"PUT Throughput", "GET Throughput", "DEL Throughput", "SCAN Throughput"}

// Row is the throughput (ops/sec) of every operation for one data size.
type Row struct {
	Size   string
	Values [len(Operations)]float64
}

// Table lists the rows in measurement order, smallest data size first.
type Table []Row

// Sizes returns the data size labels in table order.
func (t Table) Sizes() []string {
	ret := make([]string, 0, len(t))
	for _, r := range t {
		ret = append(ret, r.Size)
	}
	return ret
}

// Throughput is the measured table for the three larger cases plus the
// 1000 key baseline.
var Throughput = Table{
	{Size: "1000", Values: [4]float64{23932.6, 2.69341e+06, 57462.7, 892.938}},
	{Size: "10000", Values: [4]float64{2441.93, 996435, 23127.7, 69.3376}},
	{Size: "65536", Values: [4]float64{503.191, 247808, 3203.66, 1.8634}},
	{Size: "100000", Values: [4]float64{364.35, 157331, 2923.68, 0.552885}},
}
