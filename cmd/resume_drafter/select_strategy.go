package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/observability"
	"github.com/jonathan/resume-drafter/internal/strategy"
)

var selectStrategyCmd = &cobra.Command{
	Use:   "select-strategy",
	Short: "Show which generation strategy fits a profile",
	Long:  "Score every generation strategy against a profile and print the selection with each candidate's confidence.",
	RunE:  runSelectStrategy,
}

var (
	selProfile  string
	selOverride string
)

func init() {
	selectStrategyCmd.Flags().StringVarP(&selProfile, "profile", "p", "", "Path to profile JSON/YAML file (required)")
	selectStrategyCmd.Flags().StringVarP(&selOverride, "strategy", "s", "", "Force a strategy")

	selectStrategyCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(selectStrategyCmd)
}

func runSelectStrategy(cmd *cobra.Command, args []string) error {
	profile, _, err := ingestion.LoadProfile(selProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	selection := strategy.NewSelector().Select(profile, firstNonEmpty(selOverride, settings.Strategy))

	if isVerbose() {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSelection(&selection)
	}
	return printJSON(cmd, selection)
}
