package extract

// Metric kinds recognized by the harness.
const (
	KindDuration = "duration"
	KindDistance = "distance"
	KindMatches  = "matches"
)

func Kinds() []string {
	return []string{KindDuration, KindDistance, KindMatches}
}

func KnownKind(kind string) bool {
	switch kind {
	case KindDuration, KindDistance, KindMatches:
		return true
	}
	return false
}

// Default chains cover the output dialects the reference implementations
// actually print. Per-algorithm overrides in the config take precedence.
var defaultChains = map[string]Chain{
	KindDuration: {
		{Pattern: `執行時間[：:]\s*(\d+\.?\d*)\s*ms`},
		{Pattern: `execution time[：:]\s*(\d+\.?\d*)\s*ms`, CaseInsensitive: true},
		{Pattern: `query time[：:]\s*(\d+\.?\d*)\s*ms`, CaseInsensitive: true},
		{Pattern: `time[：:]\s*(\d+\.?\d*)\s*ms`, CaseInsensitive: true},
		{Pattern: `完成！.+?(\d+)\s*ms`},
		{Pattern: `RESULT:.*?time=(\d+\.?\d*)`, CaseInsensitive: true},
	},
	KindDistance: {
		{Pattern: `RESULT:.*?distance=(\d+\.?\d*)`, CaseInsensitive: true},
		{Pattern: `distance[：:=]\s*(\d+\.?\d*)`, CaseInsensitive: true},
	},
	KindMatches: {
		{Pattern: `RESULT:.*?matches=(\d+)`, CaseInsensitive: true},
		{Pattern: `matches[：:=]\s*(\d+)`, CaseInsensitive: true},
	},
}

// DefaultChain returns a fresh copy of the built-in chain for kind so
// callers can compile or extend it without sharing state.
func DefaultChain(kind string) Chain {
	src := defaultChains[kind]
	chain := make(Chain, len(src))
	copy(chain, src)
	return chain
}
