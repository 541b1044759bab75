package reference

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/Coolixy/FloatChat/internal/model"
)

// Workbook column headers expected in a float-metadata spreadsheet. These
// match the truncated shapefile-style names the upstream export uses.
const (
	colWMO       = "wmo"
	colLatitude  = "avg_latitu"
	colLongitude = "avg_longit"
	colProfiles  = "n_profiles"
)

// LoadWorkbook reads float metadata from an XLSX export. The first sheet
// must carry a header row naming wmo, avg_latitu, avg_longit and
// n_profiles columns. Rows with an empty or unparseable WMO are skipped.
func LoadWorkbook(path string) ([]model.FloatMeta, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reference: open workbook %s", path)
	}
	if len(wb.Sheets) == 0 {
		return nil, eris.Errorf("reference: workbook %s has no sheets", path)
	}

	sheet := wb.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, eris.Errorf("reference: workbook %s has no data rows", path)
	}

	idx := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		idx[strings.ToLower(strings.TrimSpace(cell.String()))] = i
	}
	for _, col := range []string{colWMO, colLatitude, colLongitude, colProfiles} {
		if _, ok := idx[col]; !ok {
			return nil, eris.Errorf("reference: workbook %s missing column %q", path, col)
		}
	}

	var metas []model.FloatMeta
	for _, row := range sheet.Rows[1:] {
		wmo := SanitizeWMO(cellString(row, idx[colWMO]))
		if wmo == "" {
			continue
		}
		meta := model.FloatMeta{WMO: wmo}
		if v, err := cellFloat(row, idx[colLatitude]); err == nil {
			meta.Latitude = v
		}
		if v, err := cellFloat(row, idx[colLongitude]); err == nil {
			meta.Longitude = v
		}
		if v, err := cellFloat(row, idx[colProfiles]); err == nil {
			meta.ProfileCount = int(v)
		}
		metas = append(metas, meta)
	}
	if len(metas) == 0 {
		return nil, eris.Errorf("reference: workbook %s yielded no usable rows", path)
	}
	return metas, nil
}

// SanitizeWMO strips fractional/suffix noise from a station identifier as
// exported by spreadsheets ("2902217.0" -> "2902217"). Returns "" for
// values that carry no identifier at all.
func SanitizeWMO(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if s == "" || strings.EqualFold(s, "none") || strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

func cellString(row *xlsx.Row, i int) string {
	if i >= len(row.Cells) {
		return ""
	}
	return row.Cells[i].String()
}

func cellFloat(row *xlsx.Row, i int) (float64, error) {
	if i >= len(row.Cells) {
		return 0, eris.New("reference: cell out of range")
	}
	return row.Cells[i].Float()
}
