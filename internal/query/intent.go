package query

import (
	"regexp"
	"strings"

	"github.com/Coolixy/FloatChat/internal/reference"
)

// HandlerFunc formats the deterministic answer for one known intent. It
// reads only the static reference tables and performs no I/O.
type HandlerFunc func(ref *reference.Tables) string

// intent pairs an ordered set of regex alternatives and keyword
// co-occurrence groups with a single handler. Any pattern hit on either
// the raw lower-cased or the normalized query fires the handler; the
// keyword path fires when at least one keyword of every group appears in
// the raw lower-cased query.
type intent struct {
	name     string
	patterns []*regexp.Regexp
	keywords [][]string
	handler  HandlerFunc
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// intents is the fixed dispatch table. Order is load-bearing: the matcher
// walks it top to bottom and the first hit wins, both for the regex pass
// and the keyword pass.
var intents = []intent{
	{
		name: "salinity_north_bay_bengal",
		patterns: compile(
			`salinity.*(?:north|northern).*bay.*bengal`,
			`(?:north|northern).*bay.*bengal.*salinity`,
			`(?:show|give|what|get).*salinity.*(?:north|northern).*bengal`,
			`salinity.*(?:data|profile|measurement|reading).*(?:north|northern).*bengal`,
		),
		keywords: [][]string{{"salinity", "salt"}, {"north", "northern"}, {"bengal", "bay"}},
		handler:  handleSalinityNorthBengal,
	},
	{
		name: "temperature_2024",
		patterns: compile(
			`(?:what|show|give|tell).*temperature.*2024`,
			`temperature.*(?:in|for|during).*2024`,
			`2024.*temperature.*(?:data|reading|measurement)`,
			`temp.*2024`,
		),
		keywords: [][]string{{"temperature", "temp"}, {"2024"}},
		handler:  handleTemperature2024,
	},
	{
		name: "arabian_sea_profiles_2024",
		patterns: compile(
			`(?:show|all|get|give).*(?:argo\s*)?profiles?.*arabian.*sea.*2024`,
			`arabian.*sea.*(?:profiles?|data).*2024`,
			`profiles?.*(?:collected|near|from).*arabian.*sea.*2024`,
			`2024.*arabian.*sea.*profiles?`,
		),
		keywords: [][]string{{"arabian", "arab"}, {"sea"}, {"profile", "data"}, {"2024"}},
		handler:  handleArabianSeaProfiles2024,
	},
	{
		name: "temperature_10_year_trend",
		patterns: compile(
			`temperature.*(?:chang|trend|over|last).*(?:10|ten).*years?`,
			`(?:how|what).*temperature.*(?:chang|trend).*(?:decade|10.*years?)`,
			`(?:10|ten).*years?.*temperature.*(?:trend|chang)`,
			`temperature.*(?:increase|decrease|warming|cooling).*(?:10|ten).*years?`,
		),
		keywords: [][]string{{"temperature", "temp"}, {"change", "trend", "over"}, {"year", "10", "decade"}},
		handler:  handleTenYearTrend,
	},
	{
		name: "float_count",
		patterns: compile(
			`(?:how\s*many|count|number|total).*argo.*floats?`,
			`argo.*floats?.*(?:count|total|number|how\s*many)`,
			`(?:total|count).*floats?`,
			`floats?.*(?:available|exist|there)`,
		),
		keywords: [][]string{{"float", "argo"}, {"many", "count", "number", "total"}},
		handler:  handleFloatCount,
	},
	{
		name: "profiles_north_bay_bengal",
		patterns: compile(
			`(?:how\s*many|count|number).*profiles?.*(?:north|northern).*bay.*bengal`,
			`(?:north|northern).*bay.*bengal.*profiles?.*(?:count|number|how\s*many)`,
			`profiles?.*(?:north|northern).*bengal.*(?:count|total)`,
			`(?:north|northern).*bengal.*(?:float|data).*profiles?`,
		),
		keywords: [][]string{{"north", "northern"}, {"bengal"}, {"profile", "count", "many"}},
		handler:  handleProfilesNorthBengal,
	},
	{
		name: "temperature_comparison_arabian_bengal",
		patterns: compile(
			`(?:compare|comparison).*temperature.*arabian.*sea.*bay.*bengal`,
			`(?:compare|comparison).*temperature.*bay.*bengal.*arabian.*sea`,
			`temperature.*(?:difference|vs|versus).*arabian.*sea.*bay.*bengal`,
			`temperature.*(?:difference|vs|versus).*bay.*bengal.*arabian.*sea`,
			`arabian.*sea.*(?:vs|versus|compared).*bay.*bengal.*temp`,
			`bay.*bengal.*(?:vs|versus|compared).*arabian.*sea.*temp`,
		),
		keywords: [][]string{{"temperature", "temp"}, {"compare", "vs", "difference"}, {"arabian"}, {"bengal"}},
		handler:  handleTemperatureComparison,
	},
	{
		name: "floats_summary",
		patterns: compile(
			`(?:show|give|display).*(?:summary|overview).*floats?`,
			`floats?.*(?:summary|overview|details|info)`,
			`(?:summary|overview|list).*(?:argo\s*)?floats?`,
			`(?:all|available).*floats?.*(?:info|details)`,
		),
		keywords: [][]string{{"float", "argo"}, {"summary", "overview", "list"}},
		handler:  handleFloatsSummary,
	},
}

// MatchIntent resolves a query against the intent table. Regex intents are
// tried first over both text forms, then the keyword co-occurrence pass
// over the raw lower-cased query. Returns the intent name and handler, or
// ("", nil) when nothing matched.
func MatchIntent(rawLower, normalized string) (string, HandlerFunc) {
	for _, in := range intents {
		for _, p := range in.patterns {
			if p.MatchString(rawLower) || p.MatchString(normalized) {
				return in.name, in.handler
			}
		}
	}
	for _, in := range intents {
		if allGroupsPresent(rawLower, in.keywords) {
			return in.name, in.handler
		}
	}
	return "", nil
}

// allGroupsPresent reports whether at least one keyword from every group
// occurs in the query.
func allGroupsPresent(q string, groups [][]string) bool {
	if len(groups) == 0 {
		return false
	}
	for _, group := range groups {
		hit := false
		for _, kw := range group {
			if strings.Contains(q, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
