package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how much a text could be adapted to an industry",
	Long:  "Count words, replaceable generic terms and industry keywords in a text without changing it.",
	RunE:  runAnalyze,
}

var (
	anaText     string
	anaTextFile string
	anaIndustry string
)

func init() {
	analyzeCmd.Flags().StringVar(&anaText, "text", "", "Text to analyze")
	analyzeCmd.Flags().StringVarP(&anaTextFile, "text-file", "f", "", "Path to a text file to analyze")
	analyzeCmd.Flags().StringVarP(&anaIndustry, "industry", "i", "", "Target industry")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readTextInput(anaText, anaTextFile)
	if err != nil {
		return err
	}
	industry := firstNonEmpty(anaIndustry, settings.Industry)
	if industry == "" {
		return fmt.Errorf("--industry is required (or set 'industry' in the config file or %s)", config.EnvIndustry)
	}

	analysis := keywords.NewAdapter(nil, nil).AnalyzeText(text, industry)

	warnUnknownIndustry(industry)

	if isVerbose() {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAnalysis(industry, analysis)
	}
	return printJSON(cmd, analysis)
}
