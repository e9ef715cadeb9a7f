package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/logging"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/profiles"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

type scoreOptions struct {
	resumeFile string
	idealFile  string
	fullFile   string
	outFile    string
	verbose    bool
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a résumé against an ideal profile",
		Long: "Loads a résumé profile and an ideal profile, computes keyword, measurable-results and structure " +
			"scores, and writes the result as JSON. With --full, also estimates the maximum achievable score " +
			"from the candidate's full profile.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resumeFile, "resume", "r", "", "Path to the résumé profile JSON (required)")
	cmd.Flags().StringVarP(&opts.idealFile, "ideal", "i", "", "Path to the ideal profile JSON (required)")
	cmd.Flags().StringVarP(&opts.fullFile, "full", "f", "", "Path to the full (master) profile JSON")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a human-readable breakdown")

	if err := cmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("ideal"); err != nil {
		panic(fmt.Sprintf("failed to mark ideal flag as required: %v", err))
	}

	return cmd
}

func runScore(cmd *cobra.Command, root *rootOptions, opts *scoreOptions) error {
	_, logger, err := root.runtime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	resume, err := profiles.LoadResumeProfile(opts.resumeFile)
	if err != nil {
		return fmt.Errorf("failed to load resume profile: %w", err)
	}
	ideal, err := profiles.LoadIdealProfile(opts.idealFile)
	if err != nil {
		return fmt.Errorf("failed to load ideal profile: %w", err)
	}
	var full *types.ResumeProfile
	if opts.fullFile != "" {
		full, err = profiles.LoadResumeProfile(opts.fullFile)
		if err != nil {
			return fmt.Errorf("failed to load full profile: %w", err)
		}
	}

	result := scoring.ScoreAll(resume, ideal, full)
	logger.Info("scored résumé", logging.ScoreFields(&result)...)

	if err := schemas.ValidateValue(schemas.ScoreResult, result); err != nil {
		return fmt.Errorf("score result does not match its schema: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}

	// Keep stdout pure JSON when the result goes there
	var report io.Writer = cmd.OutOrStdout()
	if opts.outFile == "" {
		report = cmd.ErrOrStderr()
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes)); err != nil {
			return fmt.Errorf("failed to write score result: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.outFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(opts.outFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ATS score: %d\n", result.Composite)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", opts.outFile)
	}

	if opts.verbose {
		observability.NewPrinter(report).PrintScoreResult(&result)
	}
	return nil
}
