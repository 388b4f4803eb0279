package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/riskcheck/internal/analyzer"
	"github.com/f3rmion/riskcheck/internal/logging"
	"github.com/spf13/cobra"
)

var precautionsCmd = &cobra.Command{
	Use:   "precautions [label]",
	Short: "List precautions for one or all labels",
	Long: `Print the precaution table used by the result panel.

With a label, only that label's tips are shown together with the
universal tips. Labels are matched exactly as the service returns them.

Examples:
  riskcheck precautions
  riskcheck precautions Stress`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrecautions,
}

func init() {
	rootCmd.AddCommand(precautionsCmd)
}

func runPrecautions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tbl := loadTable(cfg, logging.InitStderr(cfg.Verbose))
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		label := args[0]
		if !tbl.Has(label) {
			return fmt.Errorf("no precautions for %q (known labels: %s)", label, strings.Join(tbl.Labels(), ", "))
		}
		return analyzer.WritePanel(out, analyzer.Panel{
			Label:     label,
			Tips:      tbl.Lookup(label),
			Universal: tbl.Universal(),
			Note:      tbl.Note(),
		})
	}

	for _, label := range tbl.Labels() {
		fmt.Fprintf(out, "%s\n", label)
		for _, tip := range tbl.Lookup(label) {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Universal Tips")
	for _, tip := range tbl.Universal() {
		fmt.Fprintf(out, "  - %s\n", tip)
	}

	return nil
}
