package analyze

import (
	"math"
	"sort"

	"riskdice/trial"
)

// Summary describes the difference column of a set of trial records.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Summarize computes count, mean, population standard deviation, and range
// of the per-trial difference.
func Summarize(records []trial.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	summary := Summary{
		Count: len(records),
		Min:   records[0].Difference,
		Max:   records[0].Difference,
	}

	total := 0
	totalSquared := 0
	for _, record := range records {
		diff := record.Difference
		total += diff
		totalSquared += diff * diff
		summary.Min = min(summary.Min, diff)
		summary.Max = max(summary.Max, diff)
	}

	summary.Mean = float64(total) / float64(summary.Count)
	variance := float64(totalSquared)/float64(summary.Count) - summary.Mean*summary.Mean
	if variance < 0 {
		variance = 0 // rounding can push a constant column fractionally negative
	}
	summary.StdDev = math.Sqrt(variance)
	return summary
}

// Bin is one histogram row: a difference value and how many trials hit it.
type Bin struct {
	Difference int
	Count      int
}

// Histogram buckets records by difference, ascending.
func Histogram(records []trial.Record) []Bin {
	counts := map[int]int{}
	for _, record := range records {
		counts[record.Difference]++
	}

	diffs := make([]int, 0, len(counts))
	for diff := range counts {
		diffs = append(diffs, diff)
	}
	sort.Ints(diffs)

	bins := make([]Bin, 0, len(diffs))
	for _, diff := range diffs {
		bins = append(bins, Bin{Difference: diff, Count: counts[diff]})
	}
	return bins
}
