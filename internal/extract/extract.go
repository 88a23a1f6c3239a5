// Package extract pulls numeric metrics out of unstructured process output.
//
// A Chain is an ordered list of recognition rules tried in priority order.
// The first rule that matches anywhere in the text wins, and the value is
// taken from the last occurrence of that rule's match: the algorithms under
// test print intermediate progress before their final summary line, so the
// last match is the authoritative one.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule is one recognition pattern. The pattern should contain a single
// capture group holding the numeric value; without a group the whole match
// is parsed.
type Rule struct {
	Pattern         string `yaml:"pattern"`
	CaseInsensitive bool   `yaml:"case_insensitive"`

	re *regexp.Regexp
}

func (r *Rule) expr() string {
	if r.CaseInsensitive {
		return "(?i)" + r.Pattern
	}
	return r.Pattern
}

// Chain is an ordered rule list for one metric kind.
type Chain []Rule

// Compile validates every pattern in the chain up front.
func (c Chain) Compile() error {
	for i := range c {
		re, err := regexp.Compile(c[i].expr())
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		c[i].re = re
	}
	return nil
}

// Extract applies the chain to text and returns the first successfully
// parsed value. A rule whose match cannot be parsed as a number is treated
// as non-matching and the next rule is tried. ok is false when no rule
// produced a value; the caller must treat that as absence, never as zero.
func (c Chain) Extract(text string) (value float64, ok bool) {
	for i := range c {
		r := &c[i]
		if r.re == nil {
			re, err := regexp.Compile(r.expr())
			if err != nil {
				continue
			}
			r.re = re
		}
		matches := r.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		m := matches[len(matches)-1]
		raw := m[0]
		if len(m) > 1 {
			raw = m[1]
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
