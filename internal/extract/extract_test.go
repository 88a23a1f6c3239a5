package extract_test

import (
	"testing"

	"github.com/YuWang03/cluebench/internal/extract"
)

func TestExtractLastMatchWins(t *testing.T) {
	chain := extract.Chain{
		{Pattern: `Time: (\d+\.?\d*) ms`},
	}
	text := "warmup\nTime: 10 ms\nsearching...\nTime: 25 ms\n"
	got, ok := chain.Extract(text)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != 25.0 {
		t.Errorf("got %v, want 25.0", got)
	}
}

func TestExtractNoMatch(t *testing.T) {
	chain := extract.DefaultChain(extract.KindDuration)
	_, ok := chain.Extract("nothing useful here")
	if ok {
		t.Error("expected no match, got one")
	}
}

func TestExtractRuleOrder(t *testing.T) {
	chain := extract.Chain{
		{Pattern: `primary=(\d+)`},
		{Pattern: `fallback=(\d+)`},
	}
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"first rule wins over later rules", "fallback=7 primary=3", 3, true},
		{"falls through to second rule", "fallback=7", 7, true},
		{"neither matches", "other=9", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chain.Extract(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Extract(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractUnparsableMatchTriesNextRule(t *testing.T) {
	chain := extract.Chain{
		{Pattern: `value=(\S+)`},
		{Pattern: `ms: (\d+)`},
	}
	got, ok := chain.Extract("value=oops\nms: 42")
	if !ok || got != 42 {
		t.Errorf("got (%v, %v), want (42, true)", got, ok)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	chain := extract.Chain{
		{Pattern: `elapsed (\d+)`, CaseInsensitive: true},
	}
	got, ok := chain.Extract("ELAPSED 9")
	if !ok || got != 9 {
		t.Errorf("got (%v, %v), want (9, true)", got, ok)
	}
}

func TestDefaultDurationDialects(t *testing.T) {
	chain := extract.DefaultChain(extract.KindDuration)
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"chinese label", "載入完成\n執行時間：12.5 ms\n", 12.5},
		{"execution time", "Execution time: 31 ms", 31},
		{"query time", "query time: 8.25 ms", 8.25},
		{"bare time", "Time: 90 ms", 90},
		{"result token", "RESULT: distance=1200.0, time=57, matches=4", 57},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chain.Extract(tt.text)
			if !ok {
				t.Fatalf("no match in %q", tt.text)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultQualityKinds(t *testing.T) {
	out := "RESULT: distance=1234.5, time=57, matches=4"
	dist, ok := extract.DefaultChain(extract.KindDistance).Extract(out)
	if !ok || dist != 1234.5 {
		t.Errorf("distance: got (%v, %v), want (1234.5, true)", dist, ok)
	}
	matches, ok := extract.DefaultChain(extract.KindMatches).Extract(out)
	if !ok || matches != 4 {
		t.Errorf("matches: got (%v, %v), want (4, true)", matches, ok)
	}
}

func TestChainCompileRejectsBadPattern(t *testing.T) {
	chain := extract.Chain{{Pattern: `ms: (\d+`}}
	if err := chain.Compile(); err == nil {
		t.Error("expected compile error for unbalanced pattern")
	}
}
