package studyserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
	"github.com/anatolykoptev/go_study/internal/toolutil"
)

// AskInput is the input for the ask_question tool. ConversationHistory, when
// provided, is forwarded verbatim; otherwise the stored session thread (by
// SessionID) is used.
type AskInput struct {
	VideoSummary        string                   `json:"video_summary" jsonschema:"The video summary to answer from"`
	UserQuestion        string                   `json:"user_question" jsonschema:"The user's question"`
	ConversationHistory []study.ConversationTurn `json:"conversation_history,omitempty" jsonschema:"Prior question/answer turns in chronological order"`
	SessionID           string                   `json:"session_id,omitempty" jsonschema:"Session key for server-side conversation history"`
	TargetLanguage      string                   `json:"target_language,omitempty" jsonschema:"Output language (default: English)"`
}

// AskOutput is the answer payload of the ask_question tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// Stubbed in tests.
var answerQuestion = study.AnswerQuestion

// askQuestion resolves the conversation history, asks the model, and appends
// the completed turn to the session thread on success.
func askQuestion(ctx context.Context, sessions *study.SessionStore, input AskInput) toolutil.Wrapped[AskOutput] {
	history := input.ConversationHistory
	if history == nil && sessions != nil && input.SessionID != "" {
		history = sessions.History(ctx, input.SessionID)
	}

	answer, err := answerQuestion(ctx, study.AnswerRequest{
		VideoSummary:   input.VideoSummary,
		UserQuestion:   input.UserQuestion,
		History:        history,
		TargetLanguage: input.TargetLanguage,
	})
	if err != nil {
		slog.Warn("ask_question failed", slog.Any("error", err))
		return toolutil.Fail[AskOutput](err)
	}

	if sessions != nil && input.SessionID != "" {
		sessions.Append(ctx, input.SessionID, study.ConversationTurn{
			Question: input.UserQuestion,
			Answer:   answer,
		})
	}
	return toolutil.OK(AskOutput{Answer: answer})
}

func registerAskQuestion(server *mcp.Server, sessions *study.SessionStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a follow-up question about a processed video using its summary as context. Maintains per-session conversation history: pass the same session_id across questions, or supply conversation_history explicitly.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, toolutil.Wrapped[AskOutput], error) {
		if input.VideoSummary == "" {
			return nil, toolutil.Wrapped[AskOutput]{}, fmt.Errorf("video_summary is required")
		}
		if input.UserQuestion == "" {
			return nil, toolutil.Wrapped[AskOutput]{}, fmt.Errorf("user_question is required")
		}
		return nil, askQuestion(ctx, sessions, input), nil
	})
}
