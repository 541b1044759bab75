package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRewrites(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bay of Bengal temp", "bay bengal temperature"},
		{"How many ARGO floats?", "count argo floats?"},
		{"What is the temp in 2024", "show the temperature 2024"},
		{"temperature over the last ten years", "temperature over the last 10 years"},
		{"Show me salinity data", "show salinity data"},
		{"  Arabian   Sea profiles  ", "arabian sea profiles"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	queries := []string{
		"Bay of Bengal temp",
		"How many ARGO floats?",
		"temperature over the last ten years",
		"count of profiles northern bengal",
		"random text without any rules",
	}
	for _, q := range queries {
		once := Normalize(q)
		assert.Equal(t, once, Normalize(once), "input %q", q)
	}
}
