// Package analysis wraps the external AI text-analysis collaborator. The
// collaborator is best-effort by contract: a failing analysis call yields a
// fixed generic fallback, and a failing item in a batch run is skipped, so
// callers always receive a usable (possibly partial) result.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-matcher/internal/llm"
	"github.com/jonathan/career-matcher/internal/throttle"
	"github.com/jonathan/career-matcher/internal/types"
)

// careerSchema describes the structured analysis expected from the model.
var careerSchema = llm.ExtractionSchema{
	Name:        "CareerAnalysis",
	Description: "You are a career counselor. Analyze the following Korean career description and produce a structured assessment.",
	Fields: []llm.SchemaField{
		{Name: "summary", Type: "string", Description: "two-sentence career summary in Korean", Required: true},
		{Name: "strengths", Type: "[]string", Description: "3-5 notable strengths"},
		{Name: "recommended_jobs", Type: "[]string", Description: "3-5 job types that fit this background"},
		{Name: "skills", Type: "[]string", Description: "skills mentioned in the text"},
		{Name: "experience_level", Type: "string", Description: "one of: 신입, 경력, 전문가"},
		{Name: "highlights", Type: "[]string", Description: "standout achievements"},
	},
}

// Analyzer calls the AI collaborator for career-text analysis and throttled
// batch scoring.
type Analyzer struct {
	client llm.Client
	pacer  throttle.Pacer
	warn   io.Writer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPacer overrides the pacing policy used between batch calls.
func WithPacer(pacer throttle.Pacer) Option {
	return func(a *Analyzer) { a.pacer = pacer }
}

// WithWarnWriter redirects warning output (default os.Stderr).
func WithWarnWriter(w io.Writer) Option {
	return func(a *Analyzer) { a.warn = w }
}

// NewAnalyzer creates an Analyzer over the given client.
func NewAnalyzer(client llm.Client, opts ...Option) *Analyzer {
	analyzer := &Analyzer{
		client: client,
		pacer:  throttle.NewIntervalPacer(throttle.DefaultInterval),
		warn:   os.Stderr,
	}
	for _, opt := range opts {
		opt(analyzer)
	}
	return analyzer
}

// AnalyzeCareer produces a structured analysis of a free-text career
// description. It never returns an error: any client or parse failure is
// logged and replaced by the generic fallback analysis.
func (a *Analyzer) AnalyzeCareer(ctx context.Context, careerText string) types.CareerAnalysis {
	prompt := llm.BuildExtractionPrompt(careerSchema, careerText)

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		a.warnf("career analysis failed, using fallback: %v", err)
		return FallbackAnalysis()
	}

	var result types.CareerAnalysis
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &result); err != nil {
		a.warnf("career analysis returned malformed JSON, using fallback: %v", err)
		return FallbackAnalysis()
	}

	if result.Summary == "" {
		return FallbackAnalysis()
	}
	return result
}

func (a *Analyzer) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.warn, "Warning: "+format+"\n", args...)
}
