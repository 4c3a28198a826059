// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Years:     %d\n", profile.YearsOfExperience))
	sb.WriteString(fmt.Sprintf("Education: %s\n", profile.EducationLevel))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:    %s", strings.Join(profile.Skills, ", ")))
	} else {
		sb.WriteString("Skills:    (none detected)")
	}

	p.printBox("Extracted Profile", sb.String())
}

// PrintSectorRanking outputs the ranked sectors with their keyword tallies.
func (p *Printer) PrintSectorRanking(ranking []types.SectorScore) {
	var sb strings.Builder
	for i, score := range ranking {
		sb.WriteString(fmt.Sprintf("%d. %s (%d keyword hits)", i+1, score.Sector, score.Score))
		if i < len(ranking)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("Sector Ranking", sb.String())
}

// PrintRecommendations outputs a summary of the unified recommendation result.
func (p *Printer) PrintRecommendations(result *types.UnifiedRecommendations) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Occupations: %d\n", len(result.Occupations)))
	for i, occupation := range result.Occupations {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Occupations)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %.2f  %s\n", occupation.Score, occupation.Title))
	}

	sb.WriteString(fmt.Sprintf("Jobs: %d\n", len(result.Jobs)))
	for i, job := range result.Jobs {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Jobs)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %.2f  %s\n", job.Score, job.Title))
	}

	sb.WriteString(fmt.Sprintf("Programs: %d", len(result.Programs)))
	for i, program := range result.Programs {
		if i >= maxItemsToShow {
			break
		}
		sb.WriteString(fmt.Sprintf("\n  cover %d / relevance %d  %s", program.Cover, program.Relevance, program.Title))
	}

	p.printBox("Recommendations", sb.String())
}

// PrintCompanyMatches outputs a summary of company match results.
func (p *Printer) PrintCompanyMatches(matches []types.CompanyMatch) {
	var sb strings.Builder
	for i, match := range matches {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(matches)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%3d  %s (field %.0f / exp %.0f / edu %.0f)\n",
			match.MatchingScore, match.Name,
			match.MatchingDetails.FieldMatch,
			match.MatchingDetails.ExperienceMatch,
			match.MatchingDetails.EducationMatch))
	}

	p.printBox("Company Matches", strings.TrimRight(sb.String(), "\n"))
}
