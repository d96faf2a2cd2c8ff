package studyserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
)

// ProcessVideoInput is the input for the process_video tool.
type ProcessVideoInput struct {
	VideoURL       string `json:"video_url" jsonschema:"YouTube video URL (watch, youtu.be, embed, or shorts form)"`
	SummaryStyle   string `json:"summary_style,omitempty" jsonschema:"Summary style: short, medium, detailed, eli5, academic (default: medium)"`
	TargetLanguage string `json:"target_language,omitempty" jsonschema:"Output language (default: English)"`
}

func registerProcessVideo(server *mcp.Server, gen *study.Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_video",
		Description: "Generate a full set of study materials from a YouTube video: summary, notes, flashcards, chapters, key takeaways, further-study prompts, and a mind map. Partial success is normal — features that failed are null and listed in the error field; everything else is usable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProcessVideoInput) (*mcp.CallToolResult, study.ProcessedVideoResult, error) {
		if input.VideoURL == "" {
			return nil, study.ProcessedVideoResult{}, fmt.Errorf("video_url is required")
		}
		result := gen.ProcessVideo(ctx, input.VideoURL, input.SummaryStyle, input.TargetLanguage)
		return nil, *result, nil
	})
}
