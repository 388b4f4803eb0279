package cmd

import (
	"fmt"

	"github.com/f3rmion/riskcheck/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize riskcheck configuration",
	Long: `Initialize riskcheck configuration in your config directory.

This writes precautions.yaml with the built-in precaution table:
  - labels     (predicted label → list of tips)
  - universal  (tips shown for every label)
  - note       (closing line of the panel)

Edit it to match the labels your prediction service returns.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := config.WriteDefaultPrecautions(cfg.ConfigDir, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing riskcheck configuration in %s\n\n", cfg.ConfigDir)
	fmt.Fprintf(out, "  Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit precautions.yaml to match your service's labels")
	fmt.Fprintln(out, "  2. Run 'riskcheck analyze <text>' to test the endpoint")

	return nil
}
