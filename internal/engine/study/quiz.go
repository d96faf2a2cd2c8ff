package study

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// Quiz question types.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
	QuestionFillBlank      = "fill-in-the-blank"
)

// QuizQuestion is one quiz question of any supported type.
type QuizQuestion struct {
	Type          string   `json:"type"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is a titled set of questions.
type Quiz struct {
	QuizTitle string         `json:"quiz_title"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizRequest is the input for quiz generation.
type QuizRequest struct {
	TextContent       string
	NumberOfQuestions int
	TargetLanguage    string
}

const quizPrompt = `You are a study assistant. From the content below, create a quiz of exactly %d
questions. Mix question types: "multiple-choice" (with 4 options, correct_answer
must be one of the options verbatim), "true-false" (correct_answer must be
exactly "True" or "False"), and "fill-in-the-blank" (question_text contains a
blank marked with ____). Include a short explanation for each answer.

Respond in %s.

Return ONLY a JSON object of the form:
{"quiz_title": "...", "questions": [{"type": "...", "question_text": "...", "options": ["..."], "correct_answer": "...", "explanation": "..."}]}
No markdown, no commentary.

Content:
%s`

// clampQuestionCount bounds the requested question count to 3-10, default 5.
func clampQuestionCount(n int) int {
	switch {
	case n == 0:
		return 5
	case n < 3:
		return 3
	case n > 10:
		return 10
	}
	return n
}

// validQuizQuestion reports whether a question passes the per-type rules:
// multiple-choice answers must appear among the options, true-false answers
// must be exactly "True" or "False".
func validQuizQuestion(q QuizQuestion) bool {
	if strings.TrimSpace(q.QuestionText) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return false
	}
	switch q.Type {
	case QuestionMultipleChoice:
		return slices.Contains(q.Options, q.CorrectAnswer)
	case QuestionTrueFalse:
		return q.CorrectAnswer == "True" || q.CorrectAnswer == "False"
	case QuestionFillBlank:
		return true
	}
	return false
}

// GenerateQuiz produces a validated quiz from text content. Questions failing
// their per-type validation rules are dropped; a quiz left with zero valid
// questions is a failure.
func GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error) {
	n := clampQuestionCount(req.NumberOfQuestions)
	prompt := fmt.Sprintf(quizPrompt, n, engine.NormTargetLanguage(req.TargetLanguage), req.TextContent)

	out, err := engine.CallLLMJSON[Quiz](ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := make([]QuizQuestion, 0, len(out.Questions))
	for _, q := range out.Questions {
		if validQuizQuestion(q) {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no valid questions after validation")
	}
	out.Questions = questions
	return out, nil
}
