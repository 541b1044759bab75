package query

import (
	"fmt"
	"strings"

	"github.com/Coolixy/FloatChat/internal/model"
)

// Scripted replies for questions the fallback path can answer without any
// statistics.
const (
	outOfCoverageReply = "I specialize in Indian Ocean ARGO data covering the Arabian Sea, " +
		"Bay of Bengal, and broader Indian Ocean region. The region you're asking about " +
		"isn't covered by our current dataset of 6 ARGO floats."

	parameterNotMeasuredReply = "Our ARGO floats measure temperature, salinity, pressure, " +
		"and dissolved oxygen. The parameter you're asking about isn't available in our " +
		"current dataset."
)

// unsupportedRegions is the exclusion list of basins outside the network's
// coverage, distinct from the supported basin names below.
var unsupportedRegions = []string{
	"pacific", "atlantic", "southern ocean", "mediterranean", "red sea",
	"persian gulf", "coral sea", "andaman sea", "caribbean", "north sea",
	"baltic", "black sea", "caspian", "taiwan strait", "south china sea",
}

var supportedRegions = []string{
	"arabian sea", "arabian", "bay of bengal", "bengal", "indian ocean",
}

// unmeasuredParameters are sensor quantities the floats do not carry.
var unmeasuredParameters = []string{
	"ph", "nitrate", "phosphate", "chlorophyll", "turbidity", "current", "wave",
}

// promptInstruction closes every generator prompt; the goal is a short
// precise answer, not creative prose.
const promptInstruction = "\nAnswer in 1-2 conversational sentences with specific data values. " +
	"Don't just give ranges - identify the actual answer to their question with locations and values."

// BuildPrompt assembles the generator prompt from the analysis context.
// Queries that ask for the lowest/highest of a named parameter get a
// focused variant; everything else gets the general layout with whatever
// findings the context holds.
func BuildPrompt(q string, c *model.AnalysisContext, memory []model.ChatTurn) string {
	lower := strings.ToLower(q)

	var b strings.Builder
	if focused := focusedPrompt(lower, q, c); focused != "" {
		b.WriteString(focused)
	} else {
		generalPrompt(&b, q, lower, c)
	}

	if len(memory) > 0 {
		b.WriteString("\nRECENT CONVERSATION:\n")
		for _, turn := range memory {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
	}

	b.WriteString(promptInstruction)
	return b.String()
}

func focusedPrompt(lower, q string, c *model.AnalysisContext) string {
	wantsLow := strings.Contains(lower, "lowest") || strings.Contains(lower, "minimum")
	wantsHigh := strings.Contains(lower, "highest") || strings.Contains(lower, "maximum")
	if !wantsLow && !wantsHigh {
		return ""
	}

	if strings.Contains(lower, "salinity") {
		s, ok := c.Parameters[model.ParamSalinity]
		if !ok {
			return ""
		}
		if wantsLow {
			return fmt.Sprintf(`You are analyzing real ARGO oceanographic data. The user asked: %q
SALINITY DATA ANALYSIS:
- Minimum salinity found: %.1f PSU
- Maximum salinity: %.1f PSU
- Average salinity: %.1f PSU
- Location of lowest salinity: %s
Answer the user's question directly by identifying the location with the lowest salinity and explain why it's low. Be specific about the actual minimum value found.`,
				q, s.Min, s.Max, s.Mean, s.ExtremeLocations)
		}
		return fmt.Sprintf(`The user asked for the highest salinity location. From the data analysis:
- Maximum salinity: %.1f PSU
- Location: %s
- Average: %.1f PSU
Identify where the highest salinity is found and explain why.`,
			s.Max, s.ExtremeLocations, s.Mean)
	}

	if strings.Contains(lower, "temperature") {
		s, ok := c.Parameters[model.ParamTemperature]
		if !ok {
			return ""
		}
		if wantsLow {
			return fmt.Sprintf(`You are analyzing real ARGO oceanographic data. The user asked: %q
TEMPERATURE DATA ANALYSIS:
- Minimum temperature found: %.1f°C
- Maximum temperature: %.1f°C
- Average temperature: %.1f°C
- Location of lowest temperature: %s
Answer the user's question directly by identifying the location with the lowest temperature and explain the oceanographic reason.`,
				q, s.Min, s.Max, s.Mean, s.ExtremeLocations)
		}
		return fmt.Sprintf(`The user asked for the highest temperature location. From the data analysis:
- Maximum temperature: %.1f°C
- Location: %s
- Average: %.1f°C
Identify where the highest temperature is found and explain why.`,
			s.Max, s.ExtremeLocations, s.Mean)
	}

	return ""
}

func generalPrompt(b *strings.Builder, q, lower string, c *model.AnalysisContext) {
	fmt.Fprintf(b, "You are an expert oceanographer analyzing real ARGO float data. The user asked: %q\n", q)
	fmt.Fprintf(b, "QUERY ANALYSIS: %s\n", c.Type)
	fmt.Fprintf(b, "DATA AVAILABLE: %d ARGO floats, %d records\n\n", c.UniqueFloats, c.TotalRecords)

	switch {
	case containsAny(lower, "compare", "vs", "difference"):
		b.WriteString("COMPARISON ANALYSIS REQUESTED:\n")
	case containsAny(lower, "trend", "change", "over time"):
		b.WriteString("TREND ANALYSIS REQUESTED:\n")
	case containsAny(lower, "location", "where", "region"):
		b.WriteString("LOCATION-BASED ANALYSIS REQUESTED:\n")
	}

	if s, ok := c.Parameters[model.ParamTemperature]; ok {
		fmt.Fprintf(b, `TEMPERATURE FINDINGS:
- Range: %.1f°C to %.1f°C (average: %.1f°C)
- Variability: %.2f°C standard deviation
- Extreme locations: %s
`, s.Min, s.Max, s.Mean, s.StdDev, s.ExtremeLocations)
	}
	if s, ok := c.Parameters[model.ParamSalinity]; ok {
		fmt.Fprintf(b, `SALINITY FINDINGS:
- Range: %.1f to %.1f PSU (average: %.1f PSU)
- Variability: %.2f PSU standard deviation
- Extreme locations: %s
`, s.Min, s.Max, s.Mean, s.StdDev, s.ExtremeLocations)
	}

	if len(c.Regional) > 0 {
		b.WriteString("\nREGIONAL BREAKDOWN:\n")
		for _, wmo := range sortedRollupWMOs(c) {
			r := c.Regional[wmo]
			fmt.Fprintf(b, "- %s: %d records", r.Region, r.Records)
			if r.AvgTemperature != nil {
				fmt.Fprintf(b, ", %.1f°C avg", *r.AvgTemperature)
			}
			if r.AvgSalinity != nil {
				fmt.Fprintf(b, ", %.1f PSU avg", *r.AvgSalinity)
			}
			b.WriteString("\n")
		}
	}
}

// FallbackAnswer synthesizes an answer directly from the analysis context
// when the generator is unavailable or returned nothing usable. Unsupported
// regions take precedence over every other branch so coverage questions
// always get the scripted reply.
func FallbackAnswer(q string, c *model.AnalysisContext) string {
	lower := strings.ToLower(q)

	if namesUnsupportedRegion(lower) {
		return outOfCoverageReply
	}

	if containsAny(lower, "lowest", "minimum") {
		if s, ok := c.Parameters[model.ParamSalinity]; ok && strings.Contains(lower, "salinity") {
			return fmt.Sprintf("The lowest salinity found is %.1f PSU. %s shows the freshest water, "+
				"likely due to river discharge or rainfall.", s.Min, minRegion(s.ExtremeLocations))
		}
		if s, ok := c.Parameters[model.ParamTemperature]; ok && strings.Contains(lower, "temperature") {
			return fmt.Sprintf("The lowest temperature recorded is %.1f°C. %s has the coolest waters "+
				"in the analyzed region.", s.Min, minRegion(s.ExtremeLocations))
		}
	}

	if containsAny(lower, "highest", "maximum") {
		if s, ok := c.Parameters[model.ParamSalinity]; ok && strings.Contains(lower, "salinity") {
			return fmt.Sprintf("The highest salinity recorded is %.1f PSU. %s shows the saltiest "+
				"water due to high evaporation rates.", s.Max, maxRegion(s.ExtremeLocations))
		}
		if s, ok := c.Parameters[model.ParamTemperature]; ok && strings.Contains(lower, "temperature") {
			return fmt.Sprintf("The highest temperature recorded is %.1f°C. %s has the warmest "+
				"waters in the region.", s.Max, maxRegion(s.ExtremeLocations))
		}
	}

	if c.Type == model.AnalysisRisk {
		if s, ok := c.Parameters[model.ParamTemperature]; ok {
			risk := "MODERATE"
			if s.Max > 30 {
				risk = "HIGH"
			}
			return fmt.Sprintf("The most challenging conditions show extreme temperatures up to "+
				"%.1f°C with high variability (%.1f°C). Risk level: %s. %s have the most "+
				"challenging conditions.", s.Max, s.StdDev, risk, s.ExtremeLocations)
		}
		return "Analysis indicates moderate to high risk conditions in the monitored regions."
	}

	if containsAny(lower, "compare", "comparison", "vs", "versus", "difference", "between") {
		return comparisonFallback(lower, c)
	}

	if namesUnmeasuredParameter(lower) {
		return parameterNotMeasuredReply
	}

	return generalFallback(lower, c)
}

func comparisonFallback(lower string, c *model.AnalysisContext) string {
	var mentioned []string
	if strings.Contains(lower, "arabian") {
		mentioned = append(mentioned, "Arabian Sea")
	}
	if strings.Contains(lower, "bengal") {
		mentioned = append(mentioned, "Bay of Bengal")
	}
	if strings.Contains(lower, "indian ocean") ||
		(strings.Contains(lower, "indian") && strings.Contains(lower, "ocean")) {
		mentioned = append(mentioned, "Indian Ocean")
	}

	if len(mentioned) >= 2 {
		var lines []string
		for _, wmo := range sortedRollupWMOs(c) {
			r := c.Regional[wmo]
			if !regionMentioned(r.Region, mentioned) {
				continue
			}
			if strings.Contains(lower, "temperature") && r.AvgTemperature != nil {
				lines = append(lines, fmt.Sprintf("%s: %.1f°C", r.Region, *r.AvgTemperature))
			} else if strings.Contains(lower, "salinity") && r.AvgSalinity != nil {
				lines = append(lines, fmt.Sprintf("%s: %.1f PSU", r.Region, *r.AvgSalinity))
			}
		}
		if len(lines) > 0 {
			return fmt.Sprintf("Comparison results: %s.", strings.Join(lines, ", "))
		}
	}

	return "I can compare specific regions like Arabian Sea vs Bay of Bengal for temperature. " +
		"Your query mentions regions that may not have direct comparable data available."
}

func generalFallback(lower string, c *model.AnalysisContext) string {
	if containsAny(lower, "temperature", "temp") {
		if s, ok := c.Parameters[model.ParamTemperature]; ok {
			return fmt.Sprintf("Temperature analysis shows a range from %.1f°C to %.1f°C with an "+
				"average of %.1f°C across the region.", s.Min, s.Max, s.Mean)
		}
		return "Temperature data is available from our ARGO network. Please ask about a specific " +
			"region or time period."
	}

	if containsAny(lower, "salinity", "salt") {
		if s, ok := c.Parameters[model.ParamSalinity]; ok {
			return fmt.Sprintf("Salinity analysis shows values ranging from %.1f to %.1f PSU with "+
				"an average of %.1f PSU.", s.Min, s.Max, s.Mean)
		}
		return "Salinity measurements are available from our ARGO floats. Try asking about a " +
			"specific region."
	}

	if containsAny(lower, "float", "argo") {
		return fmt.Sprintf("Our network includes %d active ARGO floats monitoring the Indian Ocean "+
			"region with comprehensive oceanographic measurements.", c.UniqueFloats)
	}

	var available []string
	if _, ok := c.Parameters[model.ParamTemperature]; ok {
		available = append(available, "temperature")
	}
	if _, ok := c.Parameters[model.ParamSalinity]; ok {
		available = append(available, "salinity")
	}
	if len(available) > 0 {
		return fmt.Sprintf("I have %s data from %d ARGO floats. Please ask about a specific region "+
			"(Arabian Sea, Bay of Bengal) or parameter.", strings.Join(available, " and "), c.UniqueFloats)
	}
	return fmt.Sprintf("Data is available from %d ARGO floats in the region. Please ask about "+
		"temperature, salinity, or specific regions like Arabian Sea or Bay of Bengal.", c.UniqueFloats)
}

func namesUnsupportedRegion(lower string) bool {
	excluded := false
	for _, r := range unsupportedRegions {
		if strings.Contains(lower, r) {
			excluded = true
			break
		}
	}
	if !excluded {
		return false
	}
	for _, r := range supportedRegions {
		if strings.Contains(lower, r) {
			return false
		}
	}
	return true
}

func namesUnmeasuredParameter(lower string) bool {
	for _, p := range unmeasuredParameters {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func regionMentioned(region string, mentioned []string) bool {
	lower := strings.ToLower(region)
	for _, m := range mentioned {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// minRegion and maxRegion pull the region names out of an
// extreme-location label such as "Saltiest: X, Freshest: Y".
func minRegion(label string) string { return extremePart(label, 1) }
func maxRegion(label string) string { return extremePart(label, 0) }

func extremePart(label string, idx int) string {
	parts := strings.Split(label, ", ")
	if idx >= len(parts) {
		return label
	}
	part := parts[idx]
	if i := strings.Index(part, ": "); i >= 0 {
		return part[i+2:]
	}
	return part
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
