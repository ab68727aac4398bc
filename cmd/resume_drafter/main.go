// Package main provides the resume_drafter command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_drafter",
	Short: "Resume Drafter",
	Long:  "Resume Drafter turns a stored career profile and a resume template into a complete, industry-adapted resume draft.",

	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
}

var (
	configPath string
	verbose    bool
	logMode    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "development", "Logger mode (development or production)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
