package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

var (
	importFloatsFile   string
	importProfilesFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load float metadata and profile measurements into the store",
}

var importFloatsCmd = &cobra.Command{
	Use:   "floats",
	Short: "Sync float metadata from an Argo workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("import"); err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		metas, err := reference.LoadWorkbook(importFloatsFile)
		if err != nil {
			return err
		}

		n, err := env.Store.SyncFloatMeta(ctx, metas)
		if err != nil {
			return err
		}
		zap.L().Info("float metadata synced", zap.Int64("floats", n), zap.String("file", importFloatsFile))
		return nil
	},
}

var importProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Load profile measurements from a CSV export",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("import"); err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		profiles, err := readProfilesCSV(importProfilesFile)
		if err != nil {
			return err
		}

		n, err := env.Store.InsertProfiles(ctx, profiles)
		if err != nil {
			return err
		}
		zap.L().Info("profiles imported", zap.Int64("rows", n), zap.String("file", importProfilesFile))
		return nil
	},
}

// readProfilesCSV parses a profile export with a header row of
// wmo,cycle_number,date,latitude,longitude,temp,psal,pres,doxy_umolkg.
// Empty cells become missing values.
func readProfilesCSV(path string) ([]model.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "read csv header")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"wmo", "cycle_number"} {
		if _, ok := col[required]; !ok {
			return nil, eris.Errorf("csv missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var profiles []model.Profile
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read csv record")
		}

		wmo := reference.SanitizeWMO(field(record, "wmo"))
		if wmo == "" {
			continue
		}

		p := model.Profile{WMO: wmo}
		if cycle, err := strconv.Atoi(field(record, "cycle_number")); err == nil {
			p.CycleNumber = &cycle
		}
		if raw := field(record, "date"); raw != "" {
			if t, err := time.Parse("2006-01-02", raw); err == nil {
				p.Date = &t
			}
		}
		p.Latitude = parseFloatCell(field(record, "latitude"))
		p.Longitude = parseFloatCell(field(record, "longitude"))
		p.Temperature = parseFloatCell(field(record, "temp"))
		p.Salinity = parseFloatCell(field(record, "psal"))
		p.Pressure = parseFloatCell(field(record, "pres"))
		p.DissolvedOxygen = parseFloatCell(field(record, "doxy_umolkg"))

		profiles = append(profiles, p)
	}

	return profiles, nil
}

func parseFloatCell(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func init() {
	importFloatsCmd.Flags().StringVar(&importFloatsFile, "file", "sih.xlsx", "Argo metadata workbook")
	importProfilesCmd.Flags().StringVar(&importProfilesFile, "file", "profiles.csv", "profile measurements CSV")
	importCmd.AddCommand(importFloatsCmd)
	importCmd.AddCommand(importProfilesCmd)
	rootCmd.AddCommand(importCmd)
}
