// Package study implements AI study-material generation for YouTube videos:
// per-feature generators (summary, notes, flashcards, chapters, quiz, exam,
// key takeaways, further study, mind map, Q&A) and the orchestration pipeline
// that fans them out over a fetched transcript.
package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// SummaryStyle controls the length and register of a generated summary.
type SummaryStyle string

const (
	StyleShort    SummaryStyle = "short"
	StyleMedium   SummaryStyle = "medium"
	StyleDetailed SummaryStyle = "detailed"
	StyleELI5     SummaryStyle = "eli5"
	StyleAcademic SummaryStyle = "academic"
)

var styleDirectives = map[SummaryStyle]string{
	StyleShort:    "Write a brief summary of 2-3 sentences capturing only the central point.",
	StyleMedium:   "Write a balanced summary of 1-2 paragraphs covering the main points.",
	StyleDetailed: "Write a thorough summary covering all significant points, arguments, and examples.",
	StyleELI5:     "Explain the content as you would to a curious five-year-old: simple words, everyday analogies, no jargon.",
	StyleAcademic: "Write a formal academic summary with precise terminology, suitable for a literature review.",
}

// NormSummaryStyle normalizes a free-text style value. Unknown or empty
// values fall back to medium.
func NormSummaryStyle(s string) SummaryStyle {
	style := SummaryStyle(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := styleDirectives[style]; ok {
		return style
	}
	return StyleMedium
}

// SummaryRequest is the input for summary generation.
type SummaryRequest struct {
	Text           string
	Style          SummaryStyle
	TargetLanguage string
}

const summaryPrompt = `You are an expert at distilling video transcripts into study summaries.

%s

Respond in %s.

Return ONLY a JSON object of the form {"summary": "..."}, no markdown, no commentary.

Transcript:
%s`

// GenerateSummary produces a summary of the transcript text in the requested
// style and language.
func GenerateSummary(ctx context.Context, req SummaryRequest) (string, error) {
	directive := styleDirectives[NormSummaryStyle(string(req.Style))]
	prompt := fmt.Sprintf(summaryPrompt, directive, engine.NormTargetLanguage(req.TargetLanguage), req.Text)

	out, err := engine.CallLLMJSON[struct {
		Summary string `json:"summary"`
	}](ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Summary) == "" {
		return "", fmt.Errorf("empty summary")
	}
	return out.Summary, nil
}
