package study

import "testing"

func TestClampQuestionCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 5}, {1, 3}, {3, 3}, {7, 7}, {10, 10}, {50, 10},
	}
	for _, tt := range tests {
		if got := clampQuestionCount(tt.in); got != tt.want {
			t.Errorf("clampQuestionCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidQuizQuestion(t *testing.T) {
	tests := []struct {
		name string
		q    QuizQuestion
		want bool
	}{
		{
			name: "mc answer in options",
			q: QuizQuestion{
				Type: QuestionMultipleChoice, QuestionText: "q?",
				Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b",
			},
			want: true,
		},
		{
			name: "mc answer not in options",
			q: QuizQuestion{
				Type: QuestionMultipleChoice, QuestionText: "q?",
				Options: []string{"a", "b"}, CorrectAnswer: "z",
			},
			want: false,
		},
		{
			name: "tf valid",
			q:    QuizQuestion{Type: QuestionTrueFalse, QuestionText: "q?", CorrectAnswer: "True"},
			want: true,
		},
		{
			name: "tf lowercase rejected",
			q:    QuizQuestion{Type: QuestionTrueFalse, QuestionText: "q?", CorrectAnswer: "true"},
			want: false,
		},
		{
			name: "tf free text rejected",
			q:    QuizQuestion{Type: QuestionTrueFalse, QuestionText: "q?", CorrectAnswer: "Yes"},
			want: false,
		},
		{
			name: "fill in the blank",
			q:    QuizQuestion{Type: QuestionFillBlank, QuestionText: "the ____ is blue", CorrectAnswer: "sky"},
			want: true,
		},
		{
			name: "unknown type rejected",
			q:    QuizQuestion{Type: "essay", QuestionText: "q?", CorrectAnswer: "a"},
			want: false,
		},
		{
			name: "blank question rejected",
			q:    QuizQuestion{Type: QuestionFillBlank, QuestionText: "  ", CorrectAnswer: "a"},
			want: false,
		},
		{
			name: "blank answer rejected",
			q:    QuizQuestion{Type: QuestionFillBlank, QuestionText: "q?", CorrectAnswer: ""},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validQuizQuestion(tt.q); got != tt.want {
				t.Errorf("validQuizQuestion = %v, want %v", got, tt.want)
			}
		})
	}
}
