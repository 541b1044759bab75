package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

func analysisRecords() []model.Profile {
	return []model.Profile{
		profile("2900230", fptr(28.5), fptr(36.1)),
		profile("2902210", fptr(29.1), fptr(36.3)),
		profile("2902217", fptr(27.2), fptr(30.9)),
	}
}

func TestResolveIntentShortCircuitsStore(t *testing.T) {
	store := &mockStore{}
	gen := &mockGenerator{}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	got := e.Resolve(context.Background(), "How many ARGO floats are there?", nil)

	assert.Contains(t, got, "6 total floats")
	assert.Zero(t, store.fetchCalls)
	assert.Zero(t, gen.calls)
}

func TestResolveOffTopic(t *testing.T) {
	store := &mockStore{}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	assert.Equal(t, OffTopicReply, e.Resolve(context.Background(), "hello", nil))
	assert.Zero(t, store.fetchCalls)
}

func TestResolveGeneratorAnswer(t *testing.T) {
	long := strings.Repeat("The Arabian Sea runs warm. ", 4)
	store := &mockStore{profiles: analysisRecords()}
	gen := &mockGenerator{text: long}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	got := e.Resolve(context.Background(), "why is the arabian sea so warm", nil)

	assert.Equal(t, long, got)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.lastPrompt, "why is the arabian sea so warm")
	// Basin keyword routes to the Arabian Sea floats.
	assert.Equal(t, []string{"2900230", "2902210"}, store.lastWMOs)
	assert.Equal(t, analysisFetchLimit, store.lastLimit)
}

func TestResolveShortGeneratorOutputFallsBack(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	gen := &mockGenerator{text: "ok"}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	got := e.Resolve(context.Background(), "temperature in the arabian sea", nil)

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, got, "Temperature analysis shows a range")
}

func TestResolveGeneratorErrorFallsBack(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	gen := &mockGenerator{err: errors.New("connection refused")}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	got := e.Resolve(context.Background(), "salinity in the bay of bengal", nil)

	assert.Contains(t, got, "Salinity analysis shows values")
}

func TestResolveNoGenerator(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	got := e.Resolve(context.Background(), "temperature in the arabian sea", nil)
	assert.Contains(t, got, "Temperature analysis shows a range")
}

func TestResolveStoreError(t *testing.T) {
	store := &mockStore{err: errors.New("db down")}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	assert.Equal(t, NoDataReply, e.Resolve(context.Background(), "temperature in the arabian sea", nil))
}

func TestResolveNoRecords(t *testing.T) {
	store := &mockStore{}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	assert.Equal(t, NoDataReply, e.Resolve(context.Background(), "salinity analysis please", nil))
}

func TestResolvePanicRecovery(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	gen := &mockGenerator{panics: true}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	assert.Equal(t, InternalErrorReply,
		e.Resolve(context.Background(), "temperature in the arabian sea", nil))
}

func TestResolvePassesMemoryToPrompt(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	gen := &mockGenerator{text: strings.Repeat("Warm and salty across the basin. ", 3)}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, gen)

	memory := []model.ChatTurn{{Role: "user", Content: "what about salinity"}}
	e.Resolve(context.Background(), "temperature in the arabian sea", memory)

	assert.Contains(t, gen.lastPrompt, "RECENT CONVERSATION:")
	assert.Contains(t, gen.lastPrompt, "user: what about salinity")
}

func TestStationsCoordinatesUseNearest(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	search := &mockSearcher{nearestResult: []string{"1902677"}}
	e := NewEngine(reference.MustLoad(), search, store, nil)

	e.Resolve(context.Background(), "temperature near 10.5s 78.1e", nil)

	require.Equal(t, 1, search.nearestCalls)
	assert.InDelta(t, -10.5, search.lastLat, 0.001)
	assert.InDelta(t, 78.1, search.lastLon, 0.001)
	assert.Equal(t, []string{"1902677"}, store.lastWMOs)
}

func TestStationsTextSearch(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	search := &mockSearcher{searchResult: []string{"2901092"}}
	e := NewEngine(reference.MustLoad(), search, store, nil)

	e.Resolve(context.Background(), "equatorial salinity measurements", nil)

	assert.Equal(t, 1, search.searchCalls)
	assert.Equal(t, []string{"2901092"}, store.lastWMOs)
}

func TestStationsDefaultWholeNetwork(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	e.Resolve(context.Background(), "overall salinity statistics", nil)

	assert.Len(t, store.lastWMOs, 6)
}

func TestStationsCrossBasinComparison(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	got := e.Resolve(context.Background(), "compare salinity between the arabian sea and the bay of bengal", nil)

	// Every mentioned basin contributes its floats to the fetch.
	assert.Equal(t, []string{"2900230", "2902210", "2900765", "2902217"}, store.lastWMOs)
	assert.Equal(t, "Comparison results: Central Arabian Sea: 36.1 PSU, "+
		"Northern Arabian Sea: 36.3 PSU, Northern Bay of Bengal: 30.9 PSU.", got)
}

func TestStationsAllThreeBasins(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	e.Resolve(context.Background(), "salinity in the arabian sea, the bay of bengal and the indian ocean", nil)

	assert.Equal(t, []string{"2900230", "2902210", "2900765", "2902217", "1902677", "2901092"}, store.lastWMOs)
}

func TestStationsSanitizedBeforeFetch(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	search := &mockSearcher{searchResult: []string{"2902217.0", "none", "2900765"}}
	e := NewEngine(reference.MustLoad(), search, store, nil)

	e.Resolve(context.Background(), "equatorial salinity measurements", nil)

	assert.Equal(t, []string{"2902217", "2900765"}, store.lastWMOs)
}

func TestRawRecords(t *testing.T) {
	store := &mockStore{profiles: analysisRecords()}
	e := NewEngine(reference.MustLoad(), &mockSearcher{}, store, nil)

	records, err := e.RawRecords(context.Background(), "plot salinity in the bay of bengal")

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, rawFetchLimit, store.lastLimit)
	assert.Equal(t, []string{"2900765", "2902217"}, store.lastWMOs)
}
