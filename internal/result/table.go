// Package result holds the measurement model: the insertion-ordered table
// of samples across algorithms and experimental conditions, and its durable
// JSON form.
package result

import (
	"math"
	"strconv"
)

// Provenance tags how a table's values came to be. The reporter's contract
// is identical for both.
type Provenance string

const (
	Measured  Provenance = "measured"
	Synthetic Provenance = "synthetic"
)

// Sample is the reduced, trusted measurement for one (algorithm, condition)
// pair. Absence of a Sample means the configuration could not be measured,
// which is distinct from a Sample with value zero.
type Sample struct {
	Value     float64
	Succeeded int
	Failed    int
}

// Label is the canonical serialization key for a condition value: the
// shortest decimal form, so 2.0 keys as "2" and 0.2 as "0.2".
func Label(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Table maps algorithm × condition to Sample. Algorithms and conditions
// keep their first-seen order; downstream reporting iterates in that order.
// A table has exactly one writer while it is being filled and becomes
// read-only once the sweep completes.
type Table struct {
	Variable   string
	Provenance Provenance

	algorithms []string
	conditions []float64
	cells      map[string]map[float64]Sample
}

func NewTable(variable string, prov Provenance) *Table {
	return &Table{
		Variable:   variable,
		Provenance: prov,
		cells:      map[string]map[float64]Sample{},
	}
}

// AddAlgorithm registers an algorithm column even before (or without) any
// sample, fixing its position in the output.
func (t *Table) AddAlgorithm(name string) {
	if _, ok := t.cells[name]; ok {
		return
	}
	t.algorithms = append(t.algorithms, name)
	t.cells[name] = map[float64]Sample{}
}

// AddCondition registers a condition value, fixing its position in the
// output. Sweeps declare their conditions up front so ordering holds even
// when some cells end up absent.
func (t *Table) AddCondition(value float64) {
	for _, c := range t.conditions {
		if c == value {
			return
		}
	}
	t.conditions = append(t.conditions, value)
}

// Put stores the sample for one pair, registering the algorithm and
// condition if needed.
func (t *Table) Put(algorithm string, condition float64, s Sample) {
	t.AddAlgorithm(algorithm)
	t.AddCondition(condition)
	t.cells[algorithm][condition] = s
}

func (t *Table) Get(algorithm string, condition float64) (Sample, bool) {
	row, ok := t.cells[algorithm]
	if !ok {
		return Sample{}, false
	}
	s, ok := row[condition]
	return s, ok
}

// Algorithms returns algorithm names in insertion order.
func (t *Table) Algorithms() []string {
	out := make([]string, len(t.algorithms))
	copy(out, t.algorithms)
	return out
}

// Conditions returns condition values in declaration order.
func (t *Table) Conditions() []float64 {
	out := make([]float64, len(t.conditions))
	copy(out, t.conditions)
	return out
}

// Row returns the values present for one algorithm, in condition order.
func (t *Table) Row(algorithm string) []float64 {
	var vals []float64
	for _, c := range t.conditions {
		if s, ok := t.cells[algorithm][c]; ok {
			vals = append(vals, s.Value)
		}
	}
	return vals
}

// Len is the number of stored samples.
func (t *Table) Len() int {
	n := 0
	for _, row := range t.cells {
		n += len(row)
	}
	return n
}

// Stats are the per-algorithm summary statistics over one table row.
type Stats struct {
	Avg float64
	Min float64
	Max float64
	Std float64
}

// RowStats computes mean, min, max, and population standard deviation for
// one algorithm's row. ok is false when the row holds no samples.
func (t *Table) RowStats(algorithm string) (Stats, bool) {
	vals := t.Row(algorithm)
	if len(vals) == 0 {
		return Stats{}, false
	}
	s := Stats{Min: vals[0], Max: vals[0]}
	for _, v := range vals {
		s.Avg += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Avg /= float64(len(vals))
	var variance float64
	for _, v := range vals {
		d := v - s.Avg
		variance += d * d
	}
	s.Std = math.Sqrt(variance / float64(len(vals)))
	return s, true
}
