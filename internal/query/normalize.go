// Package query implements the routing and intent-resolution pipeline:
// a free-text question is normalized, matched against known intents with
// precomputed answers, gated for domain relevance, and otherwise resolved
// through record fetch, statistical analysis and answer assembly.
package query

import (
	"regexp"
	"strings"
)

// normalizeRules collapse synonymous phrasings into canonical tokens so
// the intent patterns catch more variations. Applied in order; the full
// rewrite is idempotent.
var normalizeRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`bay\s+of\s+bengal`), "bay bengal"},
	{regexp.MustCompile(`arabian\s+sea`), "arabian sea"},
	{regexp.MustCompile(`\b(?:what|show|give|tell|display)\b.*\b(?:is|are|me)\b`), "show"},
	{regexp.MustCompile(`\bten\b`), "10"},
	{regexp.MustCompile(`\b(?:how many|count of|number of|total)\b`), "count"},
	{regexp.MustCompile(`\btemp\b`), "temperature"},
	{regexp.MustCompile(`\bsal\b`), "salinity"},
	{regexp.MustCompile(`(?:in|for|during)\s*2024`), "2024"},
}

// Normalize canonicalizes a raw query for intent matching: lower-cases,
// trims, and applies the rewrite rules. Normalizing an already-normalized
// string returns it unchanged.
func Normalize(q string) string {
	s := strings.ToLower(strings.TrimSpace(q))
	for _, rule := range normalizeRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	return s
}
