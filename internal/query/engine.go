package query

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Coolixy/FloatChat/internal/generate"
	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

// Canned replies for queries the pipeline declines or cannot serve.
const (
	OffTopicReply = "I'm an ARGO oceanographic data analysis system. Please ask questions " +
		"about ocean temperature, salinity, ARGO floats, or marine data analysis."

	NoDataReply = "No data found for your query. Try asking about temperature, salinity, " +
		"or ARGO floats in the Arabian Sea or Bay of Bengal."

	InternalErrorReply = "An error occurred while processing your query. Please try again."
)

const (
	// analysisFetchLimit caps how many profile rows one analysis pulls.
	analysisFetchLimit = 8000
	// rawFetchLimit caps rows returned for plotting.
	rawFetchLimit = 1000
	// minAnswerLength rejects degenerate generator output.
	minAnswerLength = 50
	// maxStations caps how many floats a text search selects.
	maxStations = 10
)

// nearestStations is how many floats a coordinate query selects.
const nearestStations = 3

// Searcher finds float WMO identifiers relevant to free text or position.
type Searcher interface {
	Search(query string, limit int) []string
	Nearest(lat, lon float64, n int) []string
}

// ProfileStore fetches measurement rows for a set of floats.
type ProfileStore interface {
	FetchProfiles(ctx context.Context, wmos []string, f model.FilterSpec, limit int) ([]model.Profile, error)
}

// Engine routes a natural-language question through intent matching,
// relevance gating, and statistical analysis to produce an answer.
type Engine struct {
	ref          *reference.Tables
	search       Searcher
	store        ProfileStore
	gen          generate.Generator
	stationLimit int
}

// NewEngine assembles the resolution pipeline. search and gen may be nil;
// the engine then skips text retrieval and answers from statistics alone.
func NewEngine(ref *reference.Tables, search Searcher, store ProfileStore, gen generate.Generator) *Engine {
	return &Engine{ref: ref, search: search, store: store, gen: gen, stationLimit: maxStations}
}

// SetStationLimit overrides how many floats a text search may select.
func (e *Engine) SetStationLimit(n int) {
	if n > 0 {
		e.stationLimit = n
	}
}

// Resolve answers a question. It never returns an error: failures inside
// the pipeline degrade to scripted replies so the caller always has
// something to show the user.
func (e *Engine) Resolve(ctx context.Context, q string, memory []model.ChatTurn) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("query resolution panicked", zap.Any("panic", r), zap.String("query", q))
			answer = InternalErrorReply
		}
	}()

	raw := strings.TrimSpace(q)
	lower := strings.ToLower(raw)
	normalized := Normalize(raw)

	if name, handler := MatchIntent(lower, normalized); handler != nil {
		zap.L().Debug("intent matched", zap.String("intent", name), zap.String("query", raw))
		return handler(e.ref)
	}

	if !Relevant(raw) {
		return OffTopicReply
	}

	return e.analyze(ctx, raw, lower, memory)
}

func (e *Engine) analyze(ctx context.Context, raw, lower string, memory []model.ChatTurn) string {
	filters := analysisFilters(lower)
	wmos := e.stations(lower, filters.Coordinates)

	records, err := e.store.FetchProfiles(ctx, wmos, filters, analysisFetchLimit)
	if err != nil {
		zap.L().Error("profile fetch failed", zap.Error(err), zap.Strings("wmos", wmos))
		return NoDataReply
	}
	if len(records) == 0 {
		return NoDataReply
	}

	c := BuildContext(records, raw, e.ref)

	if e.gen != nil {
		prompt := BuildPrompt(raw, c, memory)
		text, err := e.gen.Complete(ctx, prompt, generate.DefaultOptions)
		if err != nil {
			zap.L().Warn("generator unavailable, using fallback", zap.Error(err))
		} else if len(text) > minAnswerLength {
			return text
		}
	}

	return FallbackAnswer(raw, c)
}

// RawRecords fetches the filtered measurement rows behind a query, for
// plotting rather than answering.
func (e *Engine) RawRecords(ctx context.Context, q string) ([]model.Profile, error) {
	lower := strings.ToLower(strings.TrimSpace(q))
	filters := ExtractFilters(lower)
	return e.store.FetchProfiles(ctx, e.stations(lower, filters.Coordinates), filters, rawFetchLimit)
}

// stations picks which floats a query concerns: explicit coordinates win,
// then basin keywords (accumulating across every mentioned basin, so a
// cross-basin comparison fetches both sides), then the text index, then the
// whole network. IDs are sanitized before they reach the store.
func (e *Engine) stations(lower string, coords *model.Coordinates) []string {
	var out []string
	for _, wmo := range e.stationCandidates(lower, coords) {
		if s := reference.SanitizeWMO(wmo); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) stationCandidates(lower string, coords *model.Coordinates) []string {
	if coords != nil && e.search != nil {
		if wmos := e.search.Nearest(coords.Lat, coords.Lon, nearestStations); len(wmos) > 0 {
			return wmos
		}
	}

	var basins []string
	if strings.Contains(lower, "arabian") {
		basins = append(basins, e.ref.BasinWMOs("Arabian Sea")...)
	}
	if strings.Contains(lower, "bengal") {
		basins = append(basins, e.ref.BasinWMOs("Bay of Bengal")...)
	}
	if strings.Contains(lower, "indian ocean") {
		basins = append(basins, e.ref.BasinWMOs("Indian Ocean")...)
	}
	if len(basins) > 0 {
		return basins
	}

	if e.search != nil {
		if wmos := e.search.Search(lower, e.stationLimit); len(wmos) > 0 {
			return wmos
		}
	}

	return e.ref.WMOs()
}
