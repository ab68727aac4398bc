package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/generation"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/lexicon"
	"github.com/jonathan/resume-drafter/internal/observability"
)

var (
	// settings holds environment and config-file values; command flags override them
	settings config.Config
	logger   = zap.NewNop()
)

// loadSettings resolves settings from the environment and the config file and builds the logger
func loadSettings(cmd *cobra.Command, _ []string) error {
	settings = config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		settings = fileCfg.MergeWithDefaults(settings)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	built, err := observability.NewLogger(logMode, verbose || settings.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = built.With(zap.String("command", cmd.Name()))
	return nil
}

// isVerbose reports whether verbose output was requested by flag or config
func isVerbose() bool {
	return verbose || settings.Verbose
}

// resolve applies settings as defaults under the values given on the command line
func resolve(flags config.Config) (config.Config, error) {
	resolved := flags.MergeWithDefaults(settings)
	if err := resolved.Validate(); err != nil {
		return config.Config{}, err
	}
	if resolved.Seed == 0 {
		resolved.Seed = generation.DefaultSeed
	}
	return resolved, nil
}

// newGenerator builds a generator whose keyword engine is seeded from cfg
func newGenerator(cfg config.Config) *generation.Generator {
	seed := cfg.Seed
	return generation.New(
		generation.WithLogger(logger),
		generation.WithRandSource(func() keywords.RandomSource { return keywords.NewRandomSource(seed) }),
	)
}

// generationOptions converts resolved settings into per-call generation options
func generationOptions(cfg config.Config) generation.Options {
	intensity, _ := keywords.ParseIntensity(cfg.Intensity)
	return generation.Options{
		Industry:        cfg.Industry,
		Intensity:       intensity,
		Strategy:        cfg.Strategy,
		MaxReplacements: cfg.MaxReplacements,
	}
}

// warnUnknownIndustry logs the known industries when name is not one of them
func warnUnknownIndustry(name string) {
	lex := lexicon.Default()
	if _, ok := lex.Lookup(name); !ok {
		logger.Warn("unknown industry, text is left unchanged",
			zap.String("industry", name),
			zap.Strings("known", lex.Names()),
		)
	}
}

// printJSON writes v to the command's output as indented JSON
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
