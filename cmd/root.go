package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Coolixy/FloatChat/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "floatchat",
	Short: "Conversational ARGO oceanographic data system",
	Long:  "Answers natural-language questions about Indian Ocean ARGO float measurements, backed by a profile database and a local or hosted LLM.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
