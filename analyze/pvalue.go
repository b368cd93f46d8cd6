package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZScore standardizes the observed mean difference against a hypothesized
// population mean, using the standard error of the mean.
func ZScore(s Summary, nullMean float64) float64 {
	return (s.Mean - nullMean) / (s.StdDev / math.Sqrt(float64(s.Count)))
}

// PValue is the lower-tail probability of a standard normal at z.
func PValue(z float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.CDF(z)
}
