package series

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "put_latency.txt")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestReadFile(t *testing.T) {
	values, err := ReadFile(writeFile(t, "1.0\n2.0\n0.5\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 2.0, 0.5}, values)
}

func TestReadTrimsAndSkipsBlankLines(t *testing.T) {
	values, err := Read(strings.NewReader("  3.25 \t\n\n\r\n1e-3\r\n   \n-7"))
	require.NoError(t, err)
	require.Equal(t, []float64{3.25, 0.001, -7}, values)
}

func TestReadEmpty(t *testing.T) {
	values, err := ReadFile(writeFile(t, ""))
	require.NoError(t, err)
	require.NotNil(t, values)
	require.Empty(t, values)
}

func TestReadMalformed(t *testing.T) {
	_, err := ReadFile(writeFile(t, "1.0\nabc\n2.0\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), `"abc"`)

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	require.Equal(t, strconv.ErrSyntax, numErr.Err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "put_throughput.txt"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		want := rapid.SliceOf(rapid.Float64Range(-1e12, 1e12)).Draw(t, "values")

		var sb strings.Builder
		for _, v := range want {
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteString("\n")
		}

		got, err := Read(strings.NewReader(sb.String()))
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			require.Equal(t, want[i], got[i], "value %d", i)
		}
	})
}

func TestHead(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Float64Range(-1e6, 1e6)).Draw(t, "values")
		n := rapid.IntRange(0, 64).Draw(t, "n")

		head := Head(values, n)
		require.Len(t, head, min(len(values), n))
		for i := range head {
			require.Equal(t, values[i], head[i])
		}
	})
}

func TestHeadNegative(t *testing.T) {
	require.Empty(t, Head([]float64{1, 2}, -1))
}

func TestReciprocal(t *testing.T) {
	got, err := Reciprocal([]float64{1.0, 2.0, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 0.5, 2.0}, got)

	got, err = Reciprocal(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReciprocalZero(t *testing.T) {
	got, err := Reciprocal([]float64{4, 0, 2})
	require.Nil(t, got)
	require.ErrorIs(t, err, ErrZeroLatency)
	require.Contains(t, err.Error(), "value 1")
}

func TestReciprocalRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 32).Draw(t, "n")
		values := make([]float64, n)
		for i := range values {
			v := rapid.Float64Range(1e-6, 1e6).Draw(t, "magnitude")
			if rapid.Bool().Draw(t, "negative") {
				v = -v
			}
			values[i] = v
		}

		once, err := Reciprocal(values)
		require.NoError(t, err)
		require.Len(t, once, len(values))

		twice, err := Reciprocal(once)
		require.NoError(t, err)
		for i := range values {
			require.InEpsilon(t, values[i], twice[i], 1e-12)
		}
	})
}
