package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/observability"
	"github.com/jonathan/resume-drafter/internal/schemas"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume draft from a profile and a template",
	Long:  "Generate a resume draft from a profile file and a template file (JSON or YAML). The draft is written as JSON to --out or stdout.",
	RunE:  runGenerate,
}

var (
	genProfile         string
	genTemplate        string
	genOut             string
	genIndustry        string
	genIntensity       string
	genStrategy        string
	genSeed            uint64
	genMaxReplacements int
	genValidateOutput  bool
)

func init() {
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to profile JSON/YAML file (required)")
	generateCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "Path to template JSON/YAML file")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file for the draft JSON (default stdout)")
	generateCmd.Flags().StringVarP(&genIndustry, "industry", "i", "", "Target industry (overrides the profile's industry)")
	generateCmd.Flags().StringVar(&genIntensity, "intensity", "", "Keyword adaptation intensity: light, moderate or aggressive")
	generateCmd.Flags().StringVarP(&genStrategy, "strategy", "s", "", "Force a generation strategy")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for keyword adaptation randomness")
	generateCmd.Flags().IntVar(&genMaxReplacements, "max-replacements", 0, "Maximum keyword replacements per text (0 = unlimited)")
	generateCmd.Flags().BoolVar(&genValidateOutput, "validate-output", false, "Validate the draft against the draft schema")

	generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(config.Config{
		Industry:        genIndustry,
		Intensity:       genIntensity,
		Strategy:        genStrategy,
		Template:        genTemplate,
		Seed:            genSeed,
		MaxReplacements: genMaxReplacements,
	})
	if err != nil {
		return err
	}
	if cfg.Template == "" {
		return fmt.Errorf("--template is required (or set 'template' in the config file)")
	}

	profile, profileMeta, err := ingestion.LoadProfile(genProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	tmpl, templateMeta, err := ingestion.LoadTemplate(cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	logger.Debug("inputs loaded",
		zap.String("profile", profileMeta.Source),
		zap.String("profile_hash", profileMeta.Hash),
		zap.String("template", templateMeta.Source),
		zap.String("template_hash", templateMeta.Hash),
	)

	result, err := newGenerator(cfg).Generate(profile, tmpl, generationOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to generate draft: %w", err)
	}
	logger.Info("draft generated",
		zap.String("strategy", string(result.Selection.Strategy)),
		zap.Float64("confidence", result.Selection.Confidence),
		zap.Strings("fallbacks", result.Fallbacks),
	)

	if genValidateOutput || settings.ValidateOutput {
		if err := schemas.ValidateDraft(result.Draft); err != nil {
			return fmt.Errorf("generated draft failed schema validation: %w", err)
		}
	}

	if isVerbose() {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintSelection(&result.Selection)
		printer.PrintDraft(result)
	}

	if genOut == "" {
		return printJSON(cmd, result.Draft)
	}
	if err := ingestion.WriteJSON(genOut, result.Draft); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Draft written to %s (strategy %s)\n", genOut, result.Selection.Strategy)
	return nil
}
