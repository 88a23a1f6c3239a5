// Package report turns a completed result table into per-algorithm summary
// statistics and a ranked comparison. It never cares whether the table was
// measured live or pre-populated with demonstration data.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/YuWang03/cluebench/internal/result"
)

// Summary is one algorithm's aggregate over a table row. Slowdown is the
// multiplicative factor versus the best mean (1.0 for the best itself).
type Summary struct {
	Name     string  `json:"name"`
	Rank     int     `json:"rank"`
	Samples  int     `json:"samples"`
	Avg      float64 `json:"avg"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Std      float64 `json:"std"`
	Slowdown float64 `json:"slowdown"`
}

// Summarize ranks all measurable algorithms ascending by mean sample value.
// Algorithms without a single sample are omitted; they have nothing to
// rank. Ties keep table order.
func Summarize(t *result.Table) []Summary {
	var summaries []Summary
	for _, algo := range t.Algorithms() {
		st, ok := t.RowStats(algo)
		if !ok {
			continue
		}
		summaries = append(summaries, Summary{
			Name:    algo,
			Samples: len(t.Row(algo)),
			Avg:     st.Avg,
			Min:     st.Min,
			Max:     st.Max,
			Std:     st.Std,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Avg < summaries[j].Avg
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
		summaries[i].Slowdown = summaries[i].Avg / summaries[0].Avg
	}
	return summaries
}

// Generate renders the ranked comparison for one table in the requested
// format: table (default), markdown, or json.
func Generate(t *result.Table, format string, w io.Writer) error {
	summaries := Summarize(t)
	switch format {
	case "markdown":
		return writeMarkdown(t, summaries, w)
	case "json":
		return writeJSON(t, summaries, w)
	default:
		return writeTable(t, summaries, w)
	}
}

func slowdownLabel(s Summary) string {
	if s.Rank == 1 {
		return "baseline"
	}
	return fmt.Sprintf("%.2fx", s.Slowdown)
}

func writeTable(t *result.Table, summaries []Summary, w io.Writer) error {
	fmt.Fprintf(w, "Variable: %s (%s)\n", t.Variable, t.Provenance)
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No configuration could be measured.")
		return nil
	}
	tw := tablewriter.NewWriter(w)
	tw.Header("Rank", "Algorithm", "Samples", "Avg (ms)", "Min", "Max", "Std", "vs Fastest")
	for _, s := range summaries {
		if err := tw.Append(
			fmt.Sprintf("%d", s.Rank),
			s.Name,
			fmt.Sprintf("%d", s.Samples),
			fmt.Sprintf("%.2f", s.Avg),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%.2f", s.Std),
			slowdownLabel(s),
		); err != nil {
			return err
		}
	}
	return tw.Render()
}

func writeMarkdown(t *result.Table, summaries []Summary, w io.Writer) error {
	fmt.Fprintf(w, "### %s (%s)\n\n", t.Variable, t.Provenance)
	fmt.Fprintln(w, "| Rank | Algorithm | Samples | Avg (ms) | Min | Max | Std | vs Fastest |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %d | %s | %d | %.2f | %.2f | %.2f | %.2f | %s |\n",
			s.Rank, s.Name, s.Samples, s.Avg, s.Min, s.Max, s.Std, slowdownLabel(s))
	}
	return nil
}

func writeJSON(t *result.Table, summaries []Summary, w io.Writer) error {
	out := struct {
		Variable   string            `json:"variable"`
		Provenance result.Provenance `json:"provenance"`
		Summaries  []Summary         `json:"summaries"`
	}{t.Variable, t.Provenance, summaries}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
