package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// NotesRequest is the input for study-note generation.
type NotesRequest struct {
	VideoSummary   string
	TargetLanguage string
}

const notesPrompt = `You are a study assistant. From the video summary below, produce well-structured
study notes in markdown: headings, bullet points, key terms in bold. Cover every
major point in the summary.

Respond in %s.

Return ONLY a JSON object of the form {"notes": "..."}, no markdown fences, no commentary.

Video summary:
%s`

// GenerateNotes produces structured study notes from a video summary.
func GenerateNotes(ctx context.Context, req NotesRequest) (string, error) {
	prompt := fmt.Sprintf(notesPrompt, engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary)

	out, err := engine.CallLLMJSON[struct {
		Notes string `json:"notes"`
	}](ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Notes) == "" {
		return "", fmt.Errorf("empty notes")
	}
	return out.Notes, nil
}
