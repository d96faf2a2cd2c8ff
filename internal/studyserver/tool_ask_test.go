package studyserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_study/internal/engine/study"
)

func stubAnswer(t *testing.T, fn func(ctx context.Context, req study.AnswerRequest) (string, error)) {
	t.Helper()
	orig := answerQuestion
	answerQuestion = fn
	t.Cleanup(func() { answerQuestion = orig })
}

func TestAskQuestionForwardsHistoryVerbatim(t *testing.T) {
	history := []study.ConversationTurn{
		{Question: "first?", Answer: "one"},
		{Question: "second?", Answer: "two"},
	}

	var got study.AnswerRequest
	stubAnswer(t, func(_ context.Context, req study.AnswerRequest) (string, error) {
		got = req
		return "three", nil
	})

	out := askQuestion(context.Background(), nil, AskInput{
		VideoSummary:        "summary",
		UserQuestion:        "third?",
		ConversationHistory: history,
	})

	require.Empty(t, out.Error)
	require.NotNil(t, out.Result)
	assert.Equal(t, "three", out.Result.Answer)

	// Prior turns must arrive unmodified and in chronological order.
	assert.Equal(t, history, got.History)
	assert.Equal(t, "third?", got.UserQuestion)
	assert.Equal(t, "summary", got.VideoSummary)
}

func TestAskQuestionUsesSessionHistory(t *testing.T) {
	ctx := context.Background()
	sessions := study.NewSessionStore(nil, time.Minute)
	sessions.Append(ctx, "s1", study.ConversationTurn{Question: "q1", Answer: "a1"})

	var got study.AnswerRequest
	stubAnswer(t, func(_ context.Context, req study.AnswerRequest) (string, error) {
		got = req
		return "a2", nil
	})

	out := askQuestion(ctx, sessions, AskInput{
		VideoSummary: "summary",
		UserQuestion: "q2",
		SessionID:    "s1",
	})

	require.Empty(t, out.Error)
	require.Len(t, got.History, 1)
	assert.Equal(t, "q1", got.History[0].Question)

	// The completed turn is appended for the next question.
	turns := sessions.History(ctx, "s1")
	require.Len(t, turns, 2)
	assert.Equal(t, study.ConversationTurn{Question: "q2", Answer: "a2"}, turns[1])
}

func TestAskQuestionExplicitHistoryWinsOverSession(t *testing.T) {
	ctx := context.Background()
	sessions := study.NewSessionStore(nil, time.Minute)
	sessions.Append(ctx, "s1", study.ConversationTurn{Question: "stored", Answer: "stored"})

	explicit := []study.ConversationTurn{{Question: "explicit", Answer: "explicit"}}

	var got study.AnswerRequest
	stubAnswer(t, func(_ context.Context, req study.AnswerRequest) (string, error) {
		got = req
		return "ok", nil
	})

	askQuestion(ctx, sessions, AskInput{
		VideoSummary:        "summary",
		UserQuestion:        "q",
		SessionID:           "s1",
		ConversationHistory: explicit,
	})

	assert.Equal(t, explicit, got.History)
}

func TestAskQuestionWrapsFailure(t *testing.T) {
	sessions := study.NewSessionStore(nil, time.Minute)
	stubAnswer(t, func(_ context.Context, _ study.AnswerRequest) (string, error) {
		return "", errors.New("provider down")
	})

	out := askQuestion(context.Background(), sessions, AskInput{
		VideoSummary: "summary",
		UserQuestion: "q",
		SessionID:    "s1",
	})

	assert.Nil(t, out.Result)
	assert.Equal(t, "provider down", out.Error)
	// A failed turn must not pollute the session thread.
	assert.Empty(t, sessions.History(context.Background(), "s1"))
}
