package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("ask"); err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		question := strings.Join(args, " ")
		answer := env.Engine.Resolve(ctx, question, nil)
		fmt.Println(answer)

		if _, err := env.Store.SaveInteraction(ctx, question, answer); err != nil {
			return eris.Wrap(err, "save interaction")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
