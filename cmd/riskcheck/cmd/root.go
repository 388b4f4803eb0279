// Package cmd contains all CLI commands for riskcheck.
package cmd

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/riskcheck/internal/clipboard"
	"github.com/f3rmion/riskcheck/internal/config"
	"github.com/f3rmion/riskcheck/internal/logging"
	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/f3rmion/riskcheck/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "riskcheck",
	Short: "Mental health risk detection from free text",
	Long: `riskcheck sends a piece of text to a prediction service and shows
the predicted label, the model's confidence and the sentiment of the text.

For a result you can open a list of precautions for the predicted label,
plus a few tips that apply to everyone.

Running 'riskcheck' without arguments launches the interactive TUI.

The prediction service is expected at POST <endpoint> with a JSON body
{"text": "..."}; set it with --endpoint or RISKCHECK_ENDPOINT.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/riskcheck)")
	rootCmd.PersistentFlags().String("endpoint", predict.DefaultEndpoint, "prediction endpoint URL")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-file", "", "log file for the TUI (default is <config>/riskcheck.log with --verbose, none otherwise)")

	viper.BindPFlag(config.KeyEndpoint, rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag(config.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in .env and ENV variables if set.
func initConfig() {
	config.LoadEnv(".env")

	if cfgDir != "" {
		viper.Set(config.KeyConfigDir, cfgDir)
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
}

// loadConfig resolves the settings for this run.
func loadConfig() (config.Config, error) {
	return config.FromViper(viper.GetViper())
}

// newPredictor builds the HTTP prediction client from cfg.
func newPredictor(cfg config.Config, logger *slog.Logger) *predict.Client {
	return predict.NewClient(cfg.Endpoint,
		predict.WithTimeout(cfg.Timeout),
		predict.WithLogger(logger),
	)
}

// loadTable loads the precaution table, warning and falling back to the
// built-in one if the user's file is broken.
func loadTable(cfg config.Config, logger *slog.Logger) *precaution.Table {
	tbl, err := config.LoadPrecautions(cfg.ConfigDir)
	if err != nil {
		logger.Warn("using built-in precautions", slog.Any("error", err))
		return precaution.Default()
	}
	return tbl
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.InitFile(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting riskcheck", slog.String("endpoint", cfg.Endpoint))

	var clip clipboard.Writer
	if clipboard.Available() {
		clip = clipboard.System
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Predictor: newPredictor(cfg, logger),
			Table:     loadTable(cfg, logger),
			Clipboard: clip,
			Endpoint:  cfg.Endpoint,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
