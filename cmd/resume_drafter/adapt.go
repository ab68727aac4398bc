package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/observability"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt a text to an industry's vocabulary",
	Long:  "Replace generic terms in a text with industry-specific vocabulary and print the adapted text with every replacement made.",
	RunE:  runAdapt,
}

var (
	adaptText            string
	adaptTextFile        string
	adaptIndustry        string
	adaptIntensity       string
	adaptSeed            uint64
	adaptMaxReplacements int
	adaptNoContext       bool
	adaptReplaceAll      bool
	adaptEnrich          int
)

func init() {
	adaptCmd.Flags().StringVar(&adaptText, "text", "", "Text to adapt")
	adaptCmd.Flags().StringVarP(&adaptTextFile, "text-file", "f", "", "Path to a text file to adapt")
	adaptCmd.Flags().StringVarP(&adaptIndustry, "industry", "i", "", "Target industry")
	adaptCmd.Flags().StringVar(&adaptIntensity, "intensity", "", "Adaptation intensity: light, moderate or aggressive")
	adaptCmd.Flags().Uint64Var(&adaptSeed, "seed", 0, "Seed for adaptation randomness")
	adaptCmd.Flags().IntVar(&adaptMaxReplacements, "max-replacements", 0, "Maximum replacements (0 = unlimited)")
	adaptCmd.Flags().BoolVar(&adaptNoContext, "no-context", false, "Adapt even when no industry context word is present")
	adaptCmd.Flags().BoolVar(&adaptReplaceAll, "replace-all", false, "Never keep an original occurrence unchanged")
	adaptCmd.Flags().IntVar(&adaptEnrich, "enrich", 0, "Append up to N unused industry keywords")

	rootCmd.AddCommand(adaptCmd)
}

func runAdapt(cmd *cobra.Command, args []string) error {
	text, err := readTextInput(adaptText, adaptTextFile)
	if err != nil {
		return err
	}
	cfg, err := resolve(config.Config{
		Industry:        adaptIndustry,
		Intensity:       adaptIntensity,
		Seed:            adaptSeed,
		MaxReplacements: adaptMaxReplacements,
	})
	if err != nil {
		return err
	}
	if cfg.Industry == "" {
		return fmt.Errorf("--industry is required (or set 'industry' in the config file or %s)", config.EnvIndustry)
	}

	adaptCfg := keywords.DefaultConfig()
	if intensity, ok := keywords.ParseIntensity(cfg.Intensity); ok {
		adaptCfg.Intensity = intensity
	}
	adaptCfg.MaxReplacements = cfg.MaxReplacements
	adaptCfg.ContextAware = !adaptNoContext
	adaptCfg.PreserveOriginal = !adaptReplaceAll

	adapter := keywords.NewAdapter(nil, keywords.NewRandomSource(cfg.Seed))
	result := adapter.AdaptText(text, cfg.Industry, adaptCfg)
	if adaptEnrich > 0 {
		result.Adapted = adapter.EnrichText(result.Adapted, cfg.Industry, adaptEnrich)
	}

	warnUnknownIndustry(cfg.Industry)

	if isVerbose() {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAdaptation(result)
	}
	return printJSON(cmd, result)
}
