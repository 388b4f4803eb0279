// Package config handles runtime settings and the on-disk configuration
// directory for riskcheck.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Keys understood by viper. Each can also be set through RISKCHECK_<KEY>.
const (
	KeyEndpoint  = "endpoint"
	KeyTimeout   = "timeout"
	KeyConfigDir = "config_dir"
	KeyVerbose   = "verbose"
	KeyLogFile   = "log_file"

	EnvPrefix = "RISKCHECK"

	appName        = "riskcheck"
	defaultTimeout = 30 * time.Second
	logFileName    = "riskcheck.log"
)

// Config holds the settings for one run.
type Config struct {
	Endpoint  string
	Timeout   time.Duration
	ConfigDir string
	LogFile   string
	Verbose   bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEndpoint, predict.DefaultEndpoint)
	v.SetDefault(KeyTimeout, defaultTimeout)
	v.SetDefault(KeyVerbose, false)
}

// FromViper reads a Config out of v, filling in directory defaults.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Endpoint:  v.GetString(KeyEndpoint),
		Timeout:   v.GetDuration(KeyTimeout),
		ConfigDir: v.GetString(KeyConfigDir),
		LogFile:   v.GetString(KeyLogFile),
		Verbose:   v.GetBool(KeyVerbose),
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = predict.DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid timeout %q: must be positive", v.GetString(KeyTimeout))
	}

	if cfg.ConfigDir == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding config directory: %w", err)
		}
		cfg.ConfigDir = dir
	}
	if cfg.LogFile == "" && cfg.Verbose {
		cfg.LogFile = filepath.Join(cfg.ConfigDir, logFileName)
	}

	return cfg, nil
}

// LoadEnv loads variables from a dotenv file if one exists. Variables that
// are already set in the environment win.
func LoadEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := gotenv.Load(path); err != nil {
		slog.Warn("could not load env file", slog.String("path", path), slog.Any("error", err))
	}
}

// PrecautionsPath returns where the precaution table lives inside dir.
func PrecautionsPath(dir string) string {
	return filepath.Join(dir, precaution.FileName)
}

// LoadPrecautions loads the user's precaution table from dir, falling back
// to the built-in table when none has been written.
func LoadPrecautions(dir string) (*precaution.Table, error) {
	return precaution.Load(PrecautionsPath(dir))
}

// WriteDefaultPrecautions seeds dir with the built-in precaution table.
// An existing file is kept unless force is set.
func WriteDefaultPrecautions(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := PrecautionsPath(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists\nUse --force to overwrite", path)
	}

	if err := os.WriteFile(path, precaution.DefaultYAML(), 0644); err != nil {
		return "", fmt.Errorf("writing precautions file: %w", err)
	}
	return path, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
