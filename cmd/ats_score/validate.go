package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/profiles"
	"github.com/jonathan/ats-scorer/internal/schemas"
)

func newValidateCmd() *cobra.Command {
	var (
		kind       string
		schemaFile string
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a résumé or ideal profile document",
		Long: "Checks a document against its JSON schema and, for ideal profiles, the cross-field rules. " +
			"With --schema, checks the document against that schema file instead and ignores --kind.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaFile != "" {
				if err := schemas.ValidateJSON(schemaFile, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s matches schema %s\n", args[0], schemaFile)
				return nil
			}

			var err error
			switch kind {
			case "resume":
				_, err = profiles.LoadResumeProfile(args[0])
			case "ideal":
				_, err = profiles.LoadIdealProfile(args[0])
			default:
				return fmt.Errorf("unknown --kind %q: expected resume or ideal", kind)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s profile\n", args[0], kind)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "resume", "Document kind: resume or ideal")
	cmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "Validate against this JSON Schema file")
	return cmd
}
