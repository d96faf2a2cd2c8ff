package studyserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
	"github.com/anatolykoptev/go_study/internal/toolutil"
)

// FlashcardsInput is the input for the generate_flashcards tool.
type FlashcardsInput struct {
	VideoSummary   string `json:"video_summary" jsonschema:"The video summary to generate flashcards from"`
	TargetLanguage string `json:"target_language,omitempty" jsonschema:"Output language (default: English)"`
}

func registerGenerateFlashcards(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_flashcards",
		Description: "Generate a fresh set of flashcards from an existing video summary. Each invocation produces a distinct set, so it can be used to regenerate cards the user did not like.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input FlashcardsInput) (*mcp.CallToolResult, toolutil.Wrapped[[]study.Flashcard], error) {
		if input.VideoSummary == "" {
			return nil, toolutil.Wrapped[[]study.Flashcard]{}, fmt.Errorf("video_summary is required")
		}
		cards, err := study.GenerateFlashcards(ctx, study.FlashcardsRequest{
			VideoSummary:   input.VideoSummary,
			TargetLanguage: input.TargetLanguage,
		})
		if err != nil {
			slog.Warn("generate_flashcards failed", slog.Any("error", err))
			return nil, toolutil.Fail[[]study.Flashcard](err), nil
		}
		return nil, toolutil.OK(cards), nil
	})
}
