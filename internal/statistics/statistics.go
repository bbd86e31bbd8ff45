// Package statistics accumulates summary statistics for simulation batches.
package statistics

import (
	"math"
)

// Distribution accumulates observations and answers summary questions about
// them. It keeps only counts and running sums, so partial distributions
// merge across workers in any arrival order without changing the totals,
// and the type stays comparable.
type Distribution struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Sum2  float64 `json:"sum2"` // sum of squares, for variance
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Add incorporates one observation.
func (d *Distribution) Add(v float64) {
	if d.Count == 0 || v < d.Min {
		d.Min = v
	}
	if d.Count == 0 || v > d.Max {
		d.Max = v
	}
	d.Count++
	d.Sum += v
	d.Sum2 += v * v
}

// Merge folds another distribution into this one.
func (d *Distribution) Merge(other Distribution) {
	if other.Count == 0 {
		return
	}
	if d.Count == 0 {
		*d = other
		return
	}
	d.Count += other.Count
	d.Sum += other.Sum
	d.Sum2 += other.Sum2
	d.Min = min(d.Min, other.Min)
	d.Max = max(d.Max, other.Max)
}

// Mean returns the arithmetic mean of all observations.
func (d *Distribution) Mean() float64 {
	if d.Count == 0 {
		return 0
	}
	return d.Sum / float64(d.Count)
}

// Variance returns the sample variance of all observations.
func (d *Distribution) Variance() float64 {
	if d.Count < 2 {
		return 0
	}
	mean := d.Mean()
	return (d.Sum2 - float64(d.Count)*mean*mean) / float64(d.Count-1)
}

// StdDev returns the sample standard deviation.
func (d *Distribution) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// StdError returns the standard error of the mean.
func (d *Distribution) StdError() float64 {
	if d.Count == 0 {
		return 0
	}
	return d.StdDev() / math.Sqrt(float64(d.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (d *Distribution) ConfidenceInterval95() (float64, float64) {
	mean := d.Mean()
	margin := 1.96 * d.StdError()
	return mean - margin, mean + margin
}
