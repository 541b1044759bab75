// Package search selects floats relevant to free-text queries, either by
// token overlap against per-float documents or by geographic proximity.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/Coolixy/FloatChat/internal/reference"
)

// Index holds one searchable document per float in the network.
type Index struct {
	docs []document
}

type document struct {
	wmo    string
	lat    float64
	lon    float64
	tokens map[string]struct{}
}

// NewIndex builds the in-memory index from the reference tables.
func NewIndex(ref *reference.Tables) *Index {
	idx := &Index{}
	for _, wmo := range ref.WMOs() {
		f := ref.Floats[wmo]
		text := fmt.Sprintf("argo float %s %s %s temperature salinity pressure oxygen profiles",
			wmo, f.Region, f.Basin)
		idx.docs = append(idx.docs, document{
			wmo:    wmo,
			lat:    f.Lat,
			lon:    f.Lon,
			tokens: tokenize(text),
		})
	}
	return idx
}

// Search returns the WMO ids of the floats whose documents share the most
// tokens with the query, best first. Floats with no overlap are excluded.
// Ties break toward the lower WMO id.
func (idx *Index) Search(query string, limit int) []string {
	qtokens := tokenize(query)
	if len(qtokens) == 0 {
		return nil
	}

	type scored struct {
		wmo   string
		score int
	}
	var hits []scored
	for _, d := range idx.docs {
		score := 0
		for t := range qtokens {
			if _, ok := d.tokens[t]; ok {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{wmo: d.wmo, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].wmo < hits[j].wmo
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.wmo
	}
	return out
}

// Nearest returns the n floats closest to the given position.
func (idx *Index) Nearest(lat, lon float64, n int) []string {
	origin := geom.Coord{lon, lat}

	type measured struct {
		wmo  string
		dist float64
	}
	out := make([]measured, 0, len(idx.docs))
	for _, d := range idx.docs {
		out = append(out, measured{
			wmo:  d.wmo,
			dist: xy.Distance(origin, geom.Coord{d.lon, d.lat}),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].dist != out[j].dist {
			return out[i].dist < out[j].dist
		}
		return out[i].wmo < out[j].wmo
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	wmos := make([]string, len(out))
	for i, m := range out {
		wmos[i] = m.wmo
	}
	return wmos
}

func tokenize(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,?!:;\"'()")
		if len(tok) < 2 {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}
