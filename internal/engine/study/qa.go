package study

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// ConversationTurn is one prior question/answer exchange in a Q&A thread.
type ConversationTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerRequest is the input for answering one user question about a video.
// History is forwarded to the model verbatim, in chronological order.
type AnswerRequest struct {
	VideoSummary   string
	UserQuestion   string
	History        []ConversationTurn
	TargetLanguage string
}

const answerPrompt = `You are a study assistant answering questions about a video. Use the video
summary as your source of truth; if the summary does not cover the question,
say so rather than inventing an answer.
%s
Respond in %s.

Return ONLY a JSON object of the form {"answer": "..."}, no markdown, no commentary.

Video summary:
%s

Question: %s`

// AnswerQuestion answers a follow-up question about a video, given the
// summary and the conversation so far.
func AnswerQuestion(ctx context.Context, req AnswerRequest) (string, error) {
	var historyBlock string
	if len(req.History) > 0 {
		var sb strings.Builder
		sb.WriteString("\nConversation so far:\n")
		for _, turn := range req.History {
			fmt.Fprintf(&sb, "Q: %s\nA: %s\n", turn.Question, turn.Answer)
		}
		historyBlock = sb.String()
	}
	prompt := fmt.Sprintf(answerPrompt, historyBlock,
		engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary, req.UserQuestion)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return "", err
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// Models occasionally emit answers with unescaped newlines inside the
		// JSON string value. Salvage the answer field before giving up.
		if answer := engine.ExtractJSONAnswer(raw); answer != "" {
			engine.IncrQuestionsAnswered()
			return answer, nil
		}
		return "", fmt.Errorf("decode answer: %w (raw: %s)", err, engine.TruncateRunes(raw, 200, "..."))
	}
	if strings.TrimSpace(out.Answer) == "" {
		return "", fmt.Errorf("empty answer")
	}
	engine.IncrQuestionsAnswered()
	return out.Answer, nil
}
