package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/career-matcher/internal/analysis"
	"github.com/jonathan/career-matcher/internal/llm"
	"github.com/jonathan/career-matcher/internal/throttle"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run AI career-text analysis",
	Long:  "Sends a free-text career description to the AI collaborator for a structured analysis (summary, strengths, recommended job types). Falls back to a generic analysis when the collaborator fails.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeResumeText string
	analyzeItems      []string
	analyzeDelayMS    int
	analyzeOutput     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to career description text file")
	analyzeCmd.Flags().StringVarP(&analyzeResumeText, "text", "t", "", "Inline career description")
	analyzeCmd.Flags().StringSliceVar(&analyzeItems, "score-items", nil, "Optional position titles to batch-score against the description")
	analyzeCmd.Flags().IntVar(&analyzeDelayMS, "delay-ms", int(throttle.DefaultInterval/time.Millisecond), "Pause between successive AI calls in batch scoring")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeResult is the combined output of the analyze command.
type analyzeResult struct {
	Analysis any `json:"analysis"`
	Scores   any `json:"scores,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	careerText, err := readResumeText(analyzeResumeFile, analyzeResumeText)
	if err != nil {
		return err
	}
	if careerText == "" {
		return fmt.Errorf("either --resume or --text is required")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for AI analysis")
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer func() { _ = client.Close() }()

	// An explicit flag wins over the config file.
	delayMS := analyzeDelayMS
	if cfg.InterCallDelayMS > 0 && !cmd.Flags().Changed("delay-ms") {
		delayMS = cfg.InterCallDelayMS
	}
	pacer := throttle.NewIntervalPacer(time.Duration(delayMS) * time.Millisecond)
	analyzer := analysis.NewAnalyzer(client, analysis.WithPacer(pacer))

	result := analyzeResult{
		Analysis: analyzer.AnalyzeCareer(ctx, careerText),
	}

	if len(analyzeItems) > 0 {
		scores, err := analyzer.ScoreBatch(ctx, careerText, analyzeItems)
		if err != nil {
			// Partial results are still written; only the interruption is
			// reported on stderr.
			fmt.Fprintf(os.Stderr, "Warning: batch scoring incomplete: %v\n", err)
		}
		result.Scores = scores
	}

	return writeJSONOutput(analyzeOutput, result)
}
