package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// ExamQuestion is one open-ended exam question with a model answer.
type ExamQuestion struct {
	QuestionText string `json:"question_text"`
	ModelAnswer  string `json:"model_answer"`
}

// Exam is a titled set of open-ended questions.
type Exam struct {
	ExamTitle string         `json:"exam_title"`
	Questions []ExamQuestion `json:"questions"`
}

// ExamRequest is the input for exam generation.
type ExamRequest struct {
	TextContent    string
	TotalMarks     int
	TargetLanguage string
}

const examPrompt = `You are an examiner. From the content below, write a practice exam worth %d
marks in total, consisting of 5-7 open-ended questions. For each question
provide a model answer that would earn full marks.

Respond in %s.

Return ONLY a JSON object of the form:
{"exam_title": "...", "questions": [{"question_text": "...", "model_answer": "..."}]}
No markdown, no commentary.

Content:
%s`

// clampTotalMarks bounds the requested mark total to 10-100, default 50.
func clampTotalMarks(n int) int {
	switch {
	case n == 0:
		return 50
	case n < 10:
		return 10
	case n > 100:
		return 100
	}
	return n
}

// GenerateExam produces an open-ended practice exam from text content.
// Questions with blank text are filtered out; an empty exam is a failure.
func GenerateExam(ctx context.Context, req ExamRequest) (*Exam, error) {
	marks := clampTotalMarks(req.TotalMarks)
	prompt := fmt.Sprintf(examPrompt, marks, engine.NormTargetLanguage(req.TargetLanguage), req.TextContent)

	out, err := engine.CallLLMJSON[Exam](ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := make([]ExamQuestion, 0, len(out.Questions))
	for _, q := range out.Questions {
		if strings.TrimSpace(q.QuestionText) != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in response")
	}
	out.Questions = questions
	return out, nil
}
