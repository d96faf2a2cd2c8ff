package studyserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
	"github.com/anatolykoptev/go_study/internal/toolutil"
)

// QuizInput is the input for the generate_quiz tool.
type QuizInput struct {
	TextContent       string `json:"text_content" jsonschema:"The text to quiz on (summary, notes, or transcript)"`
	NumberOfQuestions int    `json:"number_of_questions,omitempty" jsonschema:"Question count, 3-10 (default: 5)"`
	TargetLanguage    string `json:"target_language,omitempty" jsonschema:"Output language (default: English)"`
}

func registerGenerateQuiz(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_quiz",
		Description: "Generate a mixed-type quiz (multiple-choice, true/false, fill-in-the-blank) from text content. Answers are validated; questions that fail validation are dropped.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input QuizInput) (*mcp.CallToolResult, toolutil.Wrapped[study.Quiz], error) {
		if input.TextContent == "" {
			return nil, toolutil.Wrapped[study.Quiz]{}, fmt.Errorf("text_content is required")
		}
		quiz, err := study.GenerateQuiz(ctx, study.QuizRequest{
			TextContent:       input.TextContent,
			NumberOfQuestions: input.NumberOfQuestions,
			TargetLanguage:    input.TargetLanguage,
		})
		if err != nil {
			slog.Warn("generate_quiz failed", slog.Any("error", err))
			return nil, toolutil.Fail[study.Quiz](err), nil
		}
		return nil, toolutil.OK(*quiz), nil
	})
}
