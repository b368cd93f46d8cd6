package analyze

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "records.csv", Summary{Count: 2, Mean: 2, StdDev: 1, Min: 1, Max: 3})

	want := "Analysis of records.csv:\n" +
		"Total Trials: 2\n" +
		"Average Difference: 2\n" +
		"Standard Deviation: 1\n" +
		"Minimum Difference: 1\n" +
		"Maximum Difference: 3\n"
	require.Equal(t, want, buf.String(), "summary block")
}

func TestWriteSummaryFractions(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "out.txt", Summary{Count: 4, Mean: 0.5, StdDev: 1.25, Min: -2, Max: 3})

	require.Contains(t, buf.String(), "Average Difference: 0.5\n", "fractional mean renders plainly")
	require.Contains(t, buf.String(), "Standard Deviation: 1.25\n", "fractional deviation renders plainly")
}

func TestWriteHistogram(t *testing.T) {
	var buf bytes.Buffer
	WriteHistogram(&buf, []Bin{
		{Difference: -1, Count: 1},
		{Difference: 2, Count: 2},
	})

	want := "Difference,Frequency\n" +
		"-1,1\n" +
		"2,2\n"
	require.Equal(t, want, buf.String(), "histogram block")
}
