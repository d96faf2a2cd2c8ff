package studyserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
	"github.com/anatolykoptev/go_study/internal/toolutil"
)

// ExamInput is the input for the generate_exam tool.
type ExamInput struct {
	TextContent    string `json:"text_content" jsonschema:"The text to examine on (summary, notes, or transcript)"`
	TotalMarks     int    `json:"total_marks,omitempty" jsonschema:"Total marks, 10-100 (default: 50)"`
	TargetLanguage string `json:"target_language,omitempty" jsonschema:"Output language (default: English)"`
}

func registerGenerateExam(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_exam",
		Description: "Generate a practice exam of 5-7 open-ended questions with model answers from text content, worth a configurable total of marks.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ExamInput) (*mcp.CallToolResult, toolutil.Wrapped[study.Exam], error) {
		if input.TextContent == "" {
			return nil, toolutil.Wrapped[study.Exam]{}, fmt.Errorf("text_content is required")
		}
		exam, err := study.GenerateExam(ctx, study.ExamRequest{
			TextContent:    input.TextContent,
			TotalMarks:     input.TotalMarks,
			TargetLanguage: input.TargetLanguage,
		})
		if err != nil {
			slog.Warn("generate_exam failed", slog.Any("error", err))
			return nil, toolutil.Fail[study.Exam](err), nil
		}
		return nil, toolutil.OK(*exam), nil
	})
}
