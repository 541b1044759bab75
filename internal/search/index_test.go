package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coolixy/FloatChat/internal/reference"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(reference.MustLoad())
}

func TestSearchRanksByOverlap(t *testing.T) {
	idx := testIndex(t)

	got := idx.Search("northern arabian sea temperature", 10)

	// The Northern Arabian Sea float hits region, basin and parameter
	// tokens; the Central Arabian Sea float loses "northern".
	assert.Equal(t, "2902210", got[0])
	assert.Equal(t, "2900230", got[1])
	assert.Equal(t, "2902217", got[2])
}

func TestSearchLimit(t *testing.T) {
	idx := testIndex(t)
	got := idx.Search("northern arabian sea temperature", 2)
	assert.Equal(t, []string{"2902210", "2900230"}, got)
}

func TestSearchTieBreaksOnWMO(t *testing.T) {
	idx := testIndex(t)
	got := idx.Search("argo", 10)
	assert.Equal(t,
		[]string{"1902677", "2900230", "2900765", "2901092", "2902210", "2902217"},
		got)
}

func TestSearchNoOverlap(t *testing.T) {
	idx := testIndex(t)
	assert.Nil(t, idx.Search("zebra crossing downtown", 10))
	assert.Nil(t, idx.Search("", 10))
	assert.Nil(t, idx.Search("a", 10))
}

func TestNearest(t *testing.T) {
	idx := testIndex(t)

	// At the Northern Bay of Bengal float's own position.
	got := idx.Nearest(17.30187, 89.72605, 2)
	assert.Equal(t, []string{"2902217", "2900765"}, got)
}

func TestNearestEquatorial(t *testing.T) {
	idx := testIndex(t)
	got := idx.Nearest(0, 75, 3)
	assert.Equal(t, []string{"2900230", "1902677", "2901092"}, got)
}

func TestNearestNoLimit(t *testing.T) {
	idx := testIndex(t)
	got := idx.Nearest(10, 80, 0)
	assert.Len(t, got, 6)
}
