package analyze

import (
	"fmt"
	"io"
)

// WriteSummary prints the summary block for a named input.
func WriteSummary(w io.Writer, name string, s Summary) {
	fmt.Fprintf(w, "Analysis of %s:\n", name)
	fmt.Fprintf(w, "Total Trials: %d\n", s.Count)
	fmt.Fprintf(w, "Average Difference: %g\n", s.Mean)
	fmt.Fprintf(w, "Standard Deviation: %g\n", s.StdDev)
	fmt.Fprintf(w, "Minimum Difference: %d\n", s.Min)
	fmt.Fprintf(w, "Maximum Difference: %d\n", s.Max)
}

// WriteHistogram prints the frequency table, one difference per row.
func WriteHistogram(w io.Writer, bins []Bin) {
	fmt.Fprintln(w, "Difference,Frequency")
	for _, bin := range bins {
		fmt.Fprintf(w, "%d,%d\n", bin.Difference, bin.Count)
	}
}
