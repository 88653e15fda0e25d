package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThroughput(t *testing.T) {
	require.Equal(t, []string{"1000", "10000", "65536", "100000"}, Throughput.Sizes())

	for _, r := range Throughput {
		require.Len(t, r.Values, len(Operations))
		for i, v := range r.Values {
			require.Greater(t, v, 0.0, "size %v %v", r.Size, Operations[i])
		}
	}

	require.Equal(t, 2.69341e+06, Throughput[0].Values[1])
	require.Equal(t, 0.552885, Throughput[3].Values[3])
}

func TestSizesEmpty(t *testing.T) {
	require.Empty(t, Table{}.Sizes())
}
