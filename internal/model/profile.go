package model

import "time"

// Profile is a single ARGO measurement row fetched from the record store.
// Measurement fields are pointers: a nil value means the sensor reported
// nothing for that cycle and must be excluded from statistics.
type Profile struct {
	WMO             string     `json:"wmo"`
	CycleNumber     *int       `json:"cycle_number,omitempty"`
	Date            *time.Time `json:"profile_date,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Temperature     *float64   `json:"temperature,omitempty"`
	Pressure        *float64   `json:"pressure,omitempty"`
	Salinity        *float64   `json:"salinity,omitempty"`
	DissolvedOxygen *float64   `json:"dissolved_oxygen,omitempty"`
}

// FloatMeta is the per-float metadata returned by the search collaborator.
type FloatMeta struct {
	WMO          string  `json:"wmo"`
	Latitude     float64 `json:"avg_latitude"`
	Longitude    float64 `json:"avg_longitude"`
	Region       string  `json:"region,omitempty"`
	Basin        string  `json:"basin,omitempty"`
	ProfileCount int     `json:"profile_count,omitempty"`
}

// Interaction is one saved question/answer exchange.
type Interaction struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatTurn is one entry of short-term conversation memory handed to the
// generator. Role is "user" or "assistant".
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
