// Package demo provides pre-populated demonstration tables for showcasing
// the reporting pipeline without compiled algorithm projects. The clue
// table carries the reference demonstration numbers; the other variables
// follow the documented trend curves for each algorithm. Everything here is
// tagged synthetic and flows through the same storage and reporter as live
// measurements.
package demo

import (
	"math"

	"github.com/YuWang03/cluebench/internal/result"
)

var algorithms = []string{
	"GCS",
	"BAB (w/ PB-tree)",
	"BAB (w/ AB-tree)",
	"CDP",
}

// Tables returns one synthetic table per swept variable, in sweep order.
func Tables() []*result.Table {
	return []*result.Table{
		Clues(),
		KeywordFrequency(),
		QueryDistance(),
		Epsilon(),
	}
}

func newTable(variable string, values []float64) *result.Table {
	t := result.NewTable(variable, result.Synthetic)
	for _, a := range algorithms {
		t.AddAlgorithm(a)
	}
	for _, v := range values {
		t.AddCondition(v)
	}
	return t
}

func fill(t *result.Table, algo string, f func(v float64) float64) {
	for _, v := range t.Conditions() {
		t.Put(algo, v, result.Sample{Value: f(v), Succeeded: 1})
	}
}

// Clues is the query-time demonstration matrix over clue counts 2..6.
func Clues() *result.Table {
	values := map[string][]float64{
		"GCS":              {45.3, 78.2, 125.5, 198.7, 287.3},
		"BAB (w/ PB-tree)": {52.1, 85.4, 138.9, 215.3, 312.8},
		"BAB (w/ AB-tree)": {87.5, 145.7, 235.2, 368.4, 542.1},
		"CDP":              {156.8, 287.5, 478.3, 745.2, 1087.6},
	}
	t := newTable("clues", []float64{2, 3, 4, 5, 6})
	for _, algo := range algorithms {
		for i, c := range t.Conditions() {
			t.Put(algo, c, result.Sample{Value: values[algo][i], Succeeded: 1})
		}
	}
	return t
}

// KeywordFrequency trends: every algorithm slows with more candidate
// matches; GCS least, thanks to early termination, and CDP most. Growth is
// logarithmic up to frequency 500 and levels off past it.
func KeywordFrequency() *result.Table {
	t := newTable("keyword-frequency", []float64{10, 50, 100, 500, 1000, 5000, 10000})
	fill(t, "GCS", func(f float64) float64 {
		return 10 + math.Log10(f)*10
	})
	fill(t, "BAB (w/ PB-tree)", func(f float64) float64 {
		if f <= 500 {
			return 50 + math.Log10(f)*30
		}
		return 150 + (f-500)*0.002
	})
	fill(t, "BAB (w/ AB-tree)", func(f float64) float64 {
		if f <= 500 {
			return 80 + math.Log10(f)*50
		}
		return 250 + (f-500)*0.005
	})
	fill(t, "CDP", func(f float64) float64 {
		if f <= 500 {
			return 100 + math.Log10(f)*100
		}
		return 500 + (f-500)*0.1
	})
	return t
}

// QueryDistance trends: a longer query span means a larger search space
// for everyone, with CDP's unindexed search paying the steepest slope.
func QueryDistance() *result.Table {
	t := newTable("query-distance", []float64{1, 2, 4, 6, 8, 10, 12, 14})
	fill(t, "GCS", func(d float64) float64 { return 10 + d*3 })
	fill(t, "BAB (w/ PB-tree)", func(d float64) float64 { return 50 + d*8 })
	fill(t, "BAB (w/ AB-tree)", func(d float64) float64 { return 70 + d*10 })
	fill(t, "CDP", func(d float64) float64 { return 500 + d*50 })
	return t
}

// Epsilon trends: a wider tolerance makes greedy matching easier (GCS
// flattens or improves) but gives the exhaustive searches more candidates
// to check.
func Epsilon() *result.Table {
	t := newTable("epsilon", []float64{0.2, 0.4, 0.6, 0.8, 1.0})
	fill(t, "GCS", func(e float64) float64 { return 15 * (1.2 - e) })
	fill(t, "BAB (w/ PB-tree)", func(e float64) float64 { return 50 * (0.8 + 0.6*e) })
	fill(t, "BAB (w/ AB-tree)", func(e float64) float64 { return 100 * (0.7 + 0.8*e) })
	fill(t, "CDP", func(e float64) float64 { return 500 * (0.5 + e) })
	return t
}
