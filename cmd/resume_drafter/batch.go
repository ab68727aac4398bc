package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/generation"
	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/schemas"
)

var batchCmd = &cobra.Command{
	Use:   "batch [profile files...]",
	Short: "Generate drafts for many profiles in parallel",
	Long:  "Generate one draft per profile file against a shared template. Each draft is written to <out>/<profile name>.draft.json.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchTemplate    string
	batchOut         string
	batchIndustry    string
	batchIntensity   string
	batchStrategy    string
	batchSeed        uint64
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchTemplate, "template", "t", "", "Path to template JSON/YAML file")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Output directory (required)")
	batchCmd.Flags().StringVarP(&batchIndustry, "industry", "i", "", "Target industry for every profile")
	batchCmd.Flags().StringVar(&batchIntensity, "intensity", "", "Keyword adaptation intensity: light, moderate or aggressive")
	batchCmd.Flags().StringVarP(&batchStrategy, "strategy", "s", "", "Force a generation strategy for every profile")
	batchCmd.Flags().Uint64Var(&batchSeed, "seed", 0, "Seed for keyword adaptation randomness")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum drafts generated at once")

	batchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolve(config.Config{
		Industry:    batchIndustry,
		Intensity:   batchIntensity,
		Strategy:    batchStrategy,
		Template:    batchTemplate,
		Seed:        batchSeed,
		Concurrency: batchConcurrency,
	})
	if err != nil {
		return err
	}
	if cfg.Template == "" {
		return fmt.Errorf("--template is required (or set 'template' in the config file)")
	}

	tmpl, _, err := ingestion.LoadTemplate(cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	opts := generationOptions(cfg)
	items := make([]generation.BatchItem, 0, len(args))
	for _, path := range args {
		profile, _, err := ingestion.LoadProfile(path)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		items = append(items, generation.BatchItem{
			Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Profile:  profile,
			Template: tmpl,
			Options:  opts,
		})
	}

	results, err := newGenerator(cfg).GenerateBatch(cmd.Context(), items, cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("batch generation cancelled: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err == nil && settings.ValidateOutput {
			r.Err = schemas.ValidateDraft(r.Result.Draft)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", r.Name, r.Err)
			continue
		}

		path := filepath.Join(batchOut, r.Name+".draft.json")
		if err := ingestion.WriteJSON(path, r.Result.Draft); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ %s → %s (%s)\n", r.Name, path, r.Result.Selection.Strategy)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d drafts failed", failed, len(results))
	}
	return nil
}
