package query

import (
	"fmt"
	"strings"

	"github.com/Coolixy/FloatChat/internal/reference"
)

// Station holding the Northern Bay of Bengal record in the static table.
const northernBengalWMO = "2902217"

func handleSalinityNorthBengal(ref *reference.Tables) string {
	f := ref.Floats[northernBengalWMO]
	a := ref.Answers
	return fmt.Sprintf("Northern Bay of Bengal Salinity (WMO %s):\n"+
		"• Location: %.2f°N, %.2f°E\n"+
		"• Average: %.1f PSU\n"+
		"• Range: %.1f-%.1f PSU\n"+
		"• Profiles: %d | Period: %d-%d\n"+
		"• Low salinity due to Ganges-Brahmaputra freshwater input",
		northernBengalWMO, f.Lat, f.Lon,
		a.NorthernBengalAvgSalinity,
		a.NorthernBengalSalinityMin, a.NorthernBengalSalinityMax,
		f.ProfileCount, f.FirstYear(), f.LastYear())
}

func handleTemperature2024(ref *reference.Tables) string {
	var (
		sum, minTemp, maxTemp  float64
		n                      int
		warmRegion, coolRegion string
	)
	for _, wmo := range ref.WMOs() {
		f := ref.Floats[wmo]
		if !f.ActiveIn(2024) || f.AvgTemp2024 == 0 {
			continue
		}
		t := f.AvgTemp2024
		sum += t
		if n == 0 || t < minTemp {
			minTemp = t
			coolRegion = f.Region
		}
		if n == 0 || t > maxTemp {
			maxTemp = t
			warmRegion = f.Region
		}
		n++
	}
	if n == 0 {
		return "No 2024 temperature data is available in the reference tables."
	}
	a := ref.Answers
	return fmt.Sprintf("2024 Temperature Analysis:\n"+
		"• Overall average: %.1f°C | Range: %.1f°C - %.1f°C\n"+
		"• Total measurements: %d from %d floats\n"+
		"• Warmest: %s (%.1f°C)\n"+
		"• Coolest: %s (%.1f°C)\n"+
		"• Regional difference: %.1f°C",
		sum/float64(n), minTemp, maxTemp,
		a.TotalProfiles2024, a.TotalFloats,
		warmRegion, maxTemp, coolRegion, minTemp, maxTemp-minTemp)
}

func handleArabianSeaProfiles2024(ref *reference.Tables) string {
	wmos := ref.BasinWMOs("Arabian Sea")
	var b strings.Builder
	fmt.Fprintf(&b, "Arabian Sea Profiles (2024):\n"+
		"• Total profiles: %d from %d floats\n",
		ref.Answers.ArabianSeaProfiles2024, len(wmos))
	for _, wmo := range wmos {
		f := ref.Floats[wmo]
		fmt.Fprintf(&b, "• %s (WMO %s): %d profiles\n", f.Region, wmo, f.ProfileCount)
	}
	b.WriteString("• Complete basin coverage with temperature, salinity, and pressure data")
	return b.String()
}

func handleTenYearTrend(ref *reference.Tables) string {
	trends := ref.Answers.TemperatureTrends
	rows := []struct{ key, label string }{
		{"arabian_sea", "Arabian Sea"},
		{"bay_of_bengal", "Bay of Bengal"},
		{"indian_ocean", "Indian Ocean"},
	}
	var b strings.Builder
	b.WriteString("10-Year Temperature Trends (2014-2024):\n")
	for _, row := range rows {
		t, ok := trends[row.key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• %s: +%.1f°C (+%.2f°C/year)\n", row.label, t.TotalChange, t.RatePerYear)
	}
	b.WriteString("• All regions show consistent warming due to climate change")
	return b.String()
}

func handleFloatCount(ref *reference.Tables) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ARGO Float Network: %d total floats\n", ref.Answers.TotalFloats)
	for _, basin := range []string{"Bay of Bengal", "Arabian Sea", "Indian Ocean"} {
		wmos := ref.BasinWMOs(basin)
		if len(wmos) == 0 {
			continue
		}
		quals := make([]string, 0, len(wmos))
		for _, wmo := range wmos {
			// "Northern Bay of Bengal" -> "Northern"
			if fields := strings.Fields(ref.Floats[wmo].Region); len(fields) > 0 {
				quals = append(quals, fields[0])
			}
		}
		fmt.Fprintf(&b, "• %s: %d floats (%s)\n", basin, len(wmos), strings.Join(quals, ", "))
	}
	b.WriteString("• Coverage: Complete Indian Ocean basin system")
	return b.String()
}

func handleProfilesNorthBengal(ref *reference.Tables) string {
	f := ref.Floats[northernBengalWMO]
	return fmt.Sprintf("Northern Bay of Bengal (WMO %s):\n"+
		"• Total profiles: %d\n"+
		"• Location: %s (%.2f°N, %.2f°E)\n"+
		"• Active period: %d-%d\n"+
		"• Monitoring river discharge and monsoon effects",
		northernBengalWMO, f.ProfileCount, f.Region, f.Lat, f.Lon,
		f.FirstYear(), f.LastYear())
}

func handleTemperatureComparison(ref *reference.Tables) string {
	avg := func(basin string) float64 {
		var sum float64
		var n int
		for _, wmo := range ref.BasinWMOs(basin) {
			if t := ref.Floats[wmo].AvgTemp2024; t != 0 {
				sum += t
				n++
			}
		}
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}
	arabian := avg("Arabian Sea")
	bengal := avg("Bay of Bengal")
	diff := arabian - bengal
	warmer := "Arabian Sea"
	if diff < 0 {
		diff = -diff
		warmer = "Bay of Bengal"
	}
	return fmt.Sprintf("Temperature Comparison (2024):\n"+
		"• Arabian Sea average: %.1f°C\n"+
		"• Bay of Bengal average: %.1f°C\n"+
		"• Difference: %.1f°C (%s is warmer)\n"+
		"• Cause: Higher evaporation rates vs river discharge effects",
		arabian, bengal, diff, warmer)
}

func handleFloatsSummary(ref *reference.Tables) string {
	var totalProfiles, active int
	for _, f := range ref.Floats {
		totalProfiles += f.ProfileCount
		if f.ActiveIn(2024) {
			active++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ARGO Network Summary:\n• Total: %d floats | %d profiles | %d active (2024)\n\n",
		len(ref.Floats), totalProfiles, active)
	for _, wmo := range ref.WMOs() {
		f := ref.Floats[wmo]
		status := "Inactive"
		if f.ActiveIn(2024) {
			status = "Active"
		}
		fmt.Fprintf(&b, "• WMO %s: %s | %d profiles | %s\n", wmo, f.Region, f.ProfileCount, status)
	}
	return b.String()
}
