// Package main provides the ats_score CLI: deterministic ATS match scoring of a
// résumé against an ideal profile, as a one-shot command or an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/logging"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logJSON    bool
	debug      bool
}

// runtime loads configuration and builds the logger. Flags only ever turn
// logging options on; config and environment still apply when they are unset.
func (o *rootOptions) runtime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg.Log.JSON = cfg.Log.JSON || o.logJSON
	cfg.Log.Debug = cfg.Log.Debug || o.debug

	logger, err := logging.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ats_score",
		Short: "ATS match scoring for résumés",
		Long: "ats_score rates how well a résumé matches an ideal candidate profile on keywords, " +
			"measurable results and structure, and estimates the best score reachable from the full profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML/JSON/TOML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newScoreCmd(opts),
		newMeasurableCmd(),
		newValidateCmd(),
		newServeCmd(opts),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
