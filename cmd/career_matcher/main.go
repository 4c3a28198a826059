// Package main implements the career_matcher CLI for candidate-to-opportunity
// matching: profile extraction, sector ranking, unified recommendations, and
// detailed company matching.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_matcher",
	Short: "Candidate-to-opportunity matching engine",
	Long:  "career_matcher ranks occupations, job postings, training programs, and companies against a profile derived from free-text resume input.",
}

// configPath is the optional JSON config file shared by all subcommands.
var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
