package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a normalized profile from resume text",
	Long:  "Derives years of experience, education level, and skills from free-form resume text using lexical pattern matching, producing a UserProfile JSON.",
	RunE:  runProfile,
}

var (
	profileResumeFile string
	profileResumeText string
	profileOutput     string
	profileVerbose    bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileResumeFile, "resume", "r", "", "Path to resume text file")
	profileCmd.Flags().StringVarP(&profileResumeText, "text", "t", "", "Inline resume text")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	profileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	resumeText, err := readResumeText(profileResumeFile, profileResumeText)
	if err != nil {
		return err
	}
	if resumeText == "" {
		return fmt.Errorf("either --resume or --text is required")
	}

	userProfile := profile.Extract(resumeText)

	if profileVerbose {
		observability.NewPrinter(os.Stderr).PrintProfile(&userProfile)
	}

	return writeJSONOutput(profileOutput, userProfile)
}
