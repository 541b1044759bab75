package model

// Coordinates is a decimal-degree point extracted from query text.
// Southern latitudes and western longitudes are negative.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DateRange is an inclusive calendar-date window (YYYY-MM-DD).
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SortSpec orders fetched records by a measurement column.
type SortSpec struct {
	Parameter  string `json:"parameter"`
	Descending bool   `json:"descending"`
}

// FilterSpec is built fresh for each query from whatever the text yields.
// Absent fields stay nil/zero; the record store skips them. It lives for
// one query and is never shared across requests.
type FilterSpec struct {
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	DateRange      *DateRange   `json:"date_range,omitempty"`
	OxygenRequired bool         `json:"oxygen_required,omitempty"`
	SortBy         *SortSpec    `json:"sort_by,omitempty"`
	ParameterFocus string       `json:"parameter_focus,omitempty"`
}

// Empty reports whether no filter field was populated.
func (f FilterSpec) Empty() bool {
	return f.Coordinates == nil && f.DateRange == nil && !f.OxygenRequired &&
		f.SortBy == nil && f.ParameterFocus == ""
}
