package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"benefits-engine/internal/engine"
	"benefits-engine/internal/model"
	"benefits-engine/internal/report"
)

var (
	evaluatePrograms []string
	evaluateOutput   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [profile.json...]",
	Short: "Evaluate screener answers read from files or stdin",
	Long:  "Reads one screener answer document per file, or a single document from stdin when no files are given, and prints the verdict for each program.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(evaluateOutput)
		if err != nil {
			return err
		}

		reqs, err := readRequests(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		resps, err := engine.ProcessBatch(cmd.Context(), reqs, cfg.Engine.BatchConcurrency)
		if err != nil {
			return err
		}

		failed := 0
		out := cmd.OutOrStdout()
		for i, resp := range resps {
			if i > 0 && format != report.FormatJSON {
				fmt.Fprintln(out, "---")
			}
			if err := report.Evaluation(out, format, resp); err != nil {
				return err
			}
			if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
				failed++
			}
		}

		zap.L().Debug("evaluate complete", zap.Int("profiles", len(resps)), zap.Int("failed", failed))
		if failed > 0 {
			return eris.Errorf("%d of %d profiles could not be evaluated", failed, len(resps))
		}
		return nil
	},
}

// readRequests builds one request per file, tagged with the file's base
// name, or a single request from stdin.
func readRequests(stdin io.Reader, paths []string) ([]model.EvaluationRequest, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, eris.Wrap(err, "read stdin")
		}
		return []model.EvaluationRequest{{RequestID: "stdin", Programs: evaluatePrograms, Profile: data}}, nil
	}

	reqs := make([]model.EvaluationRequest, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "read %s", path)
		}
		reqs = append(reqs, model.EvaluationRequest{
			RequestID: filepath.Base(path),
			Programs:  evaluatePrograms,
			Profile:   data,
		})
	}
	return reqs, nil
}

func init() {
	evaluateCmd.Flags().StringSliceVarP(&evaluatePrograms, "programs", "p", nil, "program IDs to evaluate (default all)")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "output", "o", "table", "output format: json, yaml or table")
	rootCmd.AddCommand(evaluateCmd)
}
