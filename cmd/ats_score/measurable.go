package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/scoring"
)

// lineFlag is one classified line in --json output
type lineFlag struct {
	Line       string `json:"line"`
	Measurable bool   `json:"measurable"`
}

func newMeasurableCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "measurable [lines...]",
		Short: "Flag lines that carry a quantified result",
		Long: "Classifies each argument, or each non-empty line of stdin when no arguments are given, " +
			"as measurable (✓) or not (✗).",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd); err != nil {
					return err
				}
			}

			flags := make([]bool, len(lines))
			for i, line := range lines {
				flags[i] = scoring.IsMeasurable(line)
			}

			if asJSON {
				out := make([]lineFlag, len(lines))
				for i := range lines {
					out[i] = lineFlag{Line: lines[i], Measurable: flags[i]}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintMeasurableLines(lines, flags)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the classification as JSON")
	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}
