package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-matcher/internal/llm"
	"github.com/jonathan/career-matcher/internal/types"
)

// fitJudgment is the model's verdict for a single candidate item.
type fitJudgment struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ScoreBatch asks the model to judge the fit between the profile text and
// each item, one call per item with the pacer gating successive calls to
// avoid upstream rate limits. A failing item is logged and skipped — partial
// results are always returned. Only a cancelled context aborts the run.
func (a *Analyzer) ScoreBatch(ctx context.Context, profileText string, itemTitles []string) ([]types.BatchScore, error) {
	results := make([]types.BatchScore, 0, len(itemTitles))

	for i, title := range itemTitles {
		if i > 0 {
			if err := a.pacer.Wait(ctx); err != nil {
				return results, fmt.Errorf("batch scoring interrupted: %w", err)
			}
		}

		judgment, err := a.judgeFit(ctx, profileText, title)
		if err != nil {
			if ctx.Err() != nil {
				return results, fmt.Errorf("batch scoring interrupted: %w", ctx.Err())
			}
			a.warnf("skipping %q: %v", title, err)
			continue
		}

		results = append(results, types.BatchScore{
			Title:  title,
			Score:  clampScore(judgment.Score),
			Reason: judgment.Reason,
		})
	}

	return results, nil
}

// judgeFit runs one fit-judgment call against the standard tier.
func (a *Analyzer) judgeFit(ctx context.Context, profileText, itemTitle string) (*fitJudgment, error) {
	prompt := fmt.Sprintf(
		"You are a career counselor. Rate how well this candidate fits the position %q on a 0-100 scale.\n\n"+
			"Candidate background:\n%s\n\n"+
			`Return ONLY JSON: {"score": number, "reason": "one short sentence in Korean"}`,
		itemTitle, profileText,
	)

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var judgment fitJudgment
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &judgment); err != nil {
		return nil, fmt.Errorf("malformed judgment JSON: %w", err)
	}
	return &judgment, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
