package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/riskcheck/internal/analyzer"
	"github.com/f3rmion/riskcheck/internal/logging"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze a piece of text once and print the prediction",
	Long: `Send text to the prediction service and print the result.

The arguments are joined with spaces. With no arguments the text is
read from standard input.

Examples:
  riskcheck analyze "I can't stop worrying about tomorrow"
  riskcheck analyze --precautions "everything feels pointless"
  echo "so many deadlines" | riskcheck analyze --json`,
	RunE: runAnalyze,
}

var (
	analyzePrecautions bool
	analyzeJSON        bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&analyzePrecautions, "precautions", "p", false, "also print precautions for the predicted label")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw prediction as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logging.InitStderr(cfg.Verbose)

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	state, req, ok := analyzer.New().Edit(text).Submit()
	if !ok {
		return errors.New("no text provided")
	}

	pred, err := newPredictor(cfg, logger).Predict(cmd.Context(), req.Text)
	state = state.Receive(analyzer.Response{Seq: req.Seq, Prediction: pred, Err: err})

	if state.Phase == analyzer.PhaseError {
		return errors.New(state.Err)
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Result)
	}

	if analyzePrecautions {
		state = state.TogglePrecautions()
	}
	return analyzer.WriteText(out, state, loadTable(cfg, logger))
}
