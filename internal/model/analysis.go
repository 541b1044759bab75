package model

// AnalysisType classifies what kind of answer a free-text query wants.
type AnalysisType string

const (
	AnalysisRisk       AnalysisType = "risk_assessment"
	AnalysisFavorable  AnalysisType = "favorable_conditions"
	AnalysisExtreme    AnalysisType = "extreme_analysis"
	AnalysisComparison AnalysisType = "comparison"
	AnalysisGeneral    AnalysisType = "general_analysis"
)

// Measurement parameter keys used in AnalysisContext.Parameters.
const (
	ParamTemperature     = "temperature"
	ParamSalinity        = "salinity"
	ParamPressure        = "pressure"
	ParamDissolvedOxygen = "dissolved_oxygen"
)

// ParameterStats summarizes one measurement parameter across fetched records.
// Only non-nil values contribute; Count is the number that did.
type ParameterStats struct {
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
	// ExtremeLocations names the regions holding the min and max values,
	// e.g. "Hottest: Northern Arabian Sea, Coldest: Southern Indian Ocean".
	ExtremeLocations string `json:"extreme_locations"`
}

// StationRollup aggregates the fetched records of one known float.
type StationRollup struct {
	Region         string   `json:"region"`
	Records        int      `json:"records"`
	AvgTemperature *float64 `json:"avg_temperature,omitempty"`
	AvgSalinity    *float64 `json:"avg_salinity,omitempty"`
}

// AnalysisContext is the per-query statistical summary handed to the answer
// assembler. Built once, consumed immediately, never persisted.
type AnalysisContext struct {
	Query        string                    `json:"query"`
	TotalRecords int                       `json:"total_records"`
	UniqueFloats int                       `json:"unique_floats"`
	Type         AnalysisType              `json:"analysis_type"`
	Parameters   map[string]ParameterStats `json:"parameter_analysis"`
	Regional     map[string]StationRollup  `json:"regional_data"`
}
