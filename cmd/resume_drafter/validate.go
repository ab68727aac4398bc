package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/generation"
	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/schemas"
	"github.com/jonathan/resume-drafter/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a profile for missing personal information, or a draft against its schema",
	Long: `Check a profile for missing personal information (--profile), reporting which
required fields a generated draft would lack plus warnings for optional ones.
With --draft, check an existing draft file against the draft schema instead.`,
	RunE: runValidate,
}

var (
	valProfile  string
	valTemplate string
	valDraft    string
	valSchema   string
)

func init() {
	validateCmd.Flags().StringVarP(&valProfile, "profile", "p", "", "Path to profile JSON/YAML file")
	validateCmd.Flags().StringVarP(&valTemplate, "template", "t", "", "Path to template JSON/YAML file")
	validateCmd.Flags().StringVarP(&valDraft, "draft", "d", "", "Path to a draft JSON file to check")
	validateCmd.Flags().StringVar(&valSchema, "schema", "", "JSON Schema file for --draft (default: built-in draft schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if valProfile == "" && valDraft == "" {
		return fmt.Errorf("either --profile or --draft must be provided")
	}
	if valProfile != "" && valDraft != "" {
		return fmt.Errorf("--profile and --draft are mutually exclusive; provide only one")
	}
	if valDraft != "" {
		return validateDraftFile(cmd)
	}

	profile, _, err := ingestion.LoadProfile(valProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var tmpl *types.Template
	if path := firstNonEmpty(valTemplate, settings.Template); path != "" {
		tmpl, _, err = ingestion.LoadTemplate(path)
		if err != nil {
			return fmt.Errorf("failed to load template: %w", err)
		}
	}

	report, err := generation.New(generation.WithLogger(logger)).Validate(profile, tmpl)
	if err != nil {
		return err
	}
	if err := printJSON(cmd, report); err != nil {
		return err
	}
	if !report.IsValid {
		return fmt.Errorf("profile is missing required fields: %v", report.MissingFields)
	}
	return nil
}

func validateDraftFile(cmd *cobra.Command) error {
	var err error
	if valSchema != "" {
		err = schemas.ValidateJSON(valSchema, valDraft)
	} else {
		var data []byte
		data, err = os.ReadFile(valDraft)
		if err != nil {
			return fmt.Errorf("failed to read draft: %w", err)
		}
		err = schemas.ValidateDraftJSON(data)
	}
	if err != nil {
		return fmt.Errorf("draft %s is invalid: %w", valDraft, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Draft %s is valid\n", valDraft)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
