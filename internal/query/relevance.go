package query

import "strings"

// domainTerms is the fixed vocabulary that marks a query as in-domain.
// Substring presence of any term accepts the query.
var domainTerms = []string{
	"temperature", "temp", "salinity", "salt", "ocean", "sea", "marine", "water",
	"argo", "float", "profile", "depth", "pressure", "conductivity", "oxygen",
	"arabian", "bengal", "indian", "pacific", "atlantic", "basin", "gulf",
	"current", "tide", "wave", "thermocline", "halocline", "density",
	"upwelling", "downwelling", "circulation", "eddy", "front", "gyre",
	"latitude", "longitude", "coordinate", "location", "region", "area",
	"data", "measurement", "analysis", "trend", "change", "climate",
	"warm", "cold", "hot", "cool", "fresh", "salty", "deep", "shallow",
	"north", "south", "east", "west", "northern", "southern", "eastern", "western",
	"compare", "comparison", "difference", "vs", "versus", "between",
	"highest", "lowest", "maximum", "minimum", "extreme", "average", "mean",
	"range", "variation", "variability", "standard", "deviation",
	"year", "month", "season", "annual", "seasonal", "temporal", "time",
	"2024", "2023", "2022", "2021", "2020", "2019",
	"wmo", "station", "sensor", "instrument", "buoy", "mooring",
}

// chitChat lists greeting/meta phrases rejected only on an exact
// whole-string match of the trimmed lower-cased query.
var chitChat = map[string]struct{}{
	"hi":              {},
	"hello":           {},
	"hey":             {},
	"good morning":    {},
	"good afternoon":  {},
	"good evening":    {},
	"how are you":     {},
	"what's up":       {},
	"sup":             {},
	"thanks":          {},
	"thank you":       {},
	"bye":             {},
	"goodbye":         {},
	"test":            {},
	"testing":         {},
	"what can you do": {},
	"help":            {},
	"info":            {},
}

// Relevant reports whether a query is in-domain enough to analyze. A
// domain-vocabulary hit always accepts, even for short queries; an exact
// chit-chat match rejects; queries of two words or fewer with no domain
// term are too ambiguous to analyze.
func Relevant(q string) bool {
	lower := strings.ToLower(strings.TrimSpace(q))
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	if _, ok := chitChat[lower]; ok {
		return false
	}
	if len(strings.Fields(lower)) <= 2 {
		return false
	}
	return true
}
