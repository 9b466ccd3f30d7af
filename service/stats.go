package service

import (
	"math"
	"math/rand"
	"slices"
)

// Summary describes a run history.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Bucket is one histogram bin covering [Low, High). The last bin includes High.
type Bucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Summarize computes descriptive statistics. An empty history yields the zero Summary.
func Summarize(runs []float64) Summary {
	if len(runs) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(runs)
	slices.Sort(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Count:  n,
		Mean:   sum / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

// Histogram splits runs into bins equal-width buckets between the smallest
// and largest value. When every run is equal a single bucket holds them all.
func Histogram(runs []float64, bins int) []Bucket {
	if len(runs) == 0 || bins <= 0 {
		return []Bucket{}
	}

	low, high := slices.Min(runs), slices.Max(runs)
	if low == high {
		return []Bucket{{Low: low, High: high, Count: len(runs)}}
	}

	width := (high - low) / float64(bins)
	buckets := make([]Bucket, bins)
	for b := range buckets {
		buckets[b].Low = low + float64(b)*width
		buckets[b].High = low + float64(b+1)*width
	}
	buckets[bins-1].High = high

	for _, v := range runs {
		idx := int(math.Floor((v - low) / width))
		idx = min(max(idx, 0), bins-1)
		buckets[idx].Count++
	}
	return buckets
}

const (
	syntheticShape = 3
	syntheticScale = 40.0
)

// SyntheticRuns draws n completion times from a gamma distribution with
// shape 3 and scale 40 seconds, sorted ascending. It seeds demo histories.
func SyntheticRuns(rnd *rand.Rand, n int) []float64 {
	runs := make([]float64, 0, max(n, 0))
	for range n {
		var v float64
		for range syntheticShape {
			v += rnd.ExpFloat64()
		}
		runs = append(runs, v*syntheticScale)
	}
	slices.Sort(runs)
	return runs
}
