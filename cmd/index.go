package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

var indexFile string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the float metadata documents the search index is built from",
	RunE: func(cmd *cobra.Command, args []string) error {
		var metas []model.FloatMeta
		if indexFile != "" {
			loaded, err := reference.LoadWorkbook(indexFile)
			if err != nil {
				return err
			}
			metas = loaded
		} else {
			tables, err := reference.Load()
			if err != nil {
				return err
			}
			metas = tables.Metadata()
		}

		for _, m := range metas {
			region := m.Region
			if region == "" {
				region = "Unknown"
			}
			fmt.Printf("%s\t%.4f\t%.4f\t%s\t%d profiles\n",
				m.WMO, m.Latitude, m.Longitude, region, m.ProfileCount)
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexFile, "file", "", "optional metadata workbook instead of the embedded table")
	rootCmd.AddCommand(indexCmd)
}
