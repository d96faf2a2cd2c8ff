package study

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// Flashcard is one question/answer study card.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardsRequest is the input for flashcard generation.
type FlashcardsRequest struct {
	VideoSummary   string
	TargetLanguage string
}

const flashcardsPrompt = `You are a study assistant. From the video summary below, create a set of
flashcards (question/answer pairs) covering the key concepts. Each time you are
asked, produce a fresh and distinct set — vary the questions, angles, and
phrasing across invocations rather than repeating the same cards.

Respond in %s.

Return ONLY a JSON object of the form {"flashcards": [{"question": "...", "answer": "..."}]},
no markdown, no commentary.

Video summary:
%s`

// GenerateFlashcards produces flashcards from a video summary. Output is
// intentionally non-deterministic: repeated calls over the same summary yield
// different card sets (elevated sampling temperature plus prompt instruction).
func GenerateFlashcards(ctx context.Context, req FlashcardsRequest) ([]Flashcard, error) {
	prompt := fmt.Sprintf(flashcardsPrompt, engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary)

	raw, err := engine.CallLLMCreative(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out struct {
		Flashcards []Flashcard `json:"flashcards"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode flashcards: %w (raw: %s)", err, engine.TruncateRunes(raw, 200, "..."))
	}

	cards := out.Flashcards[:0]
	for _, c := range out.Flashcards {
		if strings.TrimSpace(c.Question) != "" && strings.TrimSpace(c.Answer) != "" {
			cards = append(cards, c)
		}
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no valid flashcards in response")
	}
	return cards, nil
}
