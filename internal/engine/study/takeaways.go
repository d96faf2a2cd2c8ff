package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// StudyPromptRequest is the shared input for key-takeaway and further-study
// generation: both operate on the summary alone.
type StudyPromptRequest struct {
	VideoSummary   string
	TargetLanguage string
}

const takeawaysPrompt = `You are a study assistant. From the video summary below, extract the 3-5 most
important takeaways. Each takeaway is one self-contained sentence.

Respond in %s.

Return ONLY a JSON object of the form {"key_takeaways": ["..."]}, no markdown, no commentary.

Video summary:
%s`

const furtherStudyPrompt = `You are a study assistant. From the video summary below, suggest 3-4 prompts
for further study: related topics, questions to explore, or exercises that
deepen understanding of the material.

Respond in %s.

Return ONLY a JSON object of the form {"prompts": ["..."]}, no markdown, no commentary.

Video summary:
%s`

// GenerateKeyTakeaways extracts the 3-5 most important points from a summary.
func GenerateKeyTakeaways(ctx context.Context, req StudyPromptRequest) ([]string, error) {
	prompt := fmt.Sprintf(takeawaysPrompt, engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary)

	out, err := engine.CallLLMJSON[struct {
		KeyTakeaways []string `json:"key_takeaways"`
	}](ctx, prompt)
	if err != nil {
		return nil, err
	}
	items := dropBlank(out.KeyTakeaways)
	if len(items) == 0 {
		return nil, fmt.Errorf("no takeaways in response")
	}
	return items, nil
}

// GenerateFurtherStudy suggests 3-4 follow-up study prompts from a summary.
func GenerateFurtherStudy(ctx context.Context, req StudyPromptRequest) ([]string, error) {
	prompt := fmt.Sprintf(furtherStudyPrompt, engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary)

	out, err := engine.CallLLMJSON[struct {
		Prompts []string `json:"prompts"`
	}](ctx, prompt)
	if err != nil {
		return nil, err
	}
	items := dropBlank(out.Prompts)
	if len(items) == 0 {
		return nil, fmt.Errorf("no study prompts in response")
	}
	return items, nil
}

func dropBlank(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
