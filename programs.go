package main

import (
	"github.com/spf13/cobra"

	"benefits-engine/internal/programs"
	"benefits-engine/internal/report"
)

var programsOutput string

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the programs that can be evaluated",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(programsOutput)
		if err != nil {
			return err
		}
		return report.Programs(cmd.OutOrStdout(), format, programs.All())
	},
}

func init() {
	programsCmd.Flags().StringVarP(&programsOutput, "output", "o", "table", "output format: json, yaml or table")
	rootCmd.AddCommand(programsCmd)
}
