package query

import (
	"context"

	"github.com/Coolixy/FloatChat/internal/generate"
	"github.com/Coolixy/FloatChat/internal/model"
)

type mockStore struct {
	profiles   []model.Profile
	err        error
	fetchCalls int
	lastWMOs   []string
	lastFilter model.FilterSpec
	lastLimit  int
}

func (m *mockStore) FetchProfiles(_ context.Context, wmos []string, f model.FilterSpec, limit int) ([]model.Profile, error) {
	m.fetchCalls++
	m.lastWMOs = wmos
	m.lastFilter = f
	m.lastLimit = limit
	return m.profiles, m.err
}

type mockSearcher struct {
	searchResult  []string
	nearestResult []string
	searchCalls   int
	nearestCalls  int
	lastLat       float64
	lastLon       float64
}

func (m *mockSearcher) Search(string, int) []string {
	m.searchCalls++
	return m.searchResult
}

func (m *mockSearcher) Nearest(lat, lon float64, _ int) []string {
	m.nearestCalls++
	m.lastLat = lat
	m.lastLon = lon
	return m.nearestResult
}

type mockGenerator struct {
	text       string
	err        error
	panics     bool
	calls      int
	lastPrompt string
}

func (m *mockGenerator) Complete(_ context.Context, prompt string, _ generate.Options) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.panics {
		panic("generator blew up")
	}
	return m.text, m.err
}

func (m *mockGenerator) Probe(context.Context) bool { return m.err == nil }
