package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/sectors"
	"github.com/spf13/cobra"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Rank industry sectors against resume text",
	Long:  "Scores the fixed industry sectors by keyword-vocabulary overlap with the resume text and returns the top K as JSON.",
	RunE:  runSectors,
}

var (
	sectorsResumeFile string
	sectorsResumeText string
	sectorsTopK       int
	sectorsOutput     string
	sectorsVerbose    bool
)

func init() {
	sectorsCmd.Flags().StringVarP(&sectorsResumeFile, "resume", "r", "", "Path to resume text file")
	sectorsCmd.Flags().StringVarP(&sectorsResumeText, "text", "t", "", "Inline resume text")
	sectorsCmd.Flags().IntVarP(&sectorsTopK, "top", "k", sectors.DefaultTopK, "Number of sectors to return")
	sectorsCmd.Flags().StringVarP(&sectorsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	sectorsCmd.Flags().BoolVarP(&sectorsVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(sectorsCmd)
}

func runSectors(_ *cobra.Command, _ []string) error {
	resumeText, err := readResumeText(sectorsResumeFile, sectorsResumeText)
	if err != nil {
		return err
	}
	if resumeText == "" {
		return fmt.Errorf("either --resume or --text is required")
	}

	ranking := sectors.Rank(resumeText, sectorsTopK)

	if sectorsVerbose {
		observability.NewPrinter(os.Stderr).PrintSectorRanking(ranking)
	}

	return writeJSONOutput(sectorsOutput, ranking)
}
