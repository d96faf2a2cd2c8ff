package study

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(nil, time.Minute)

	assert.Nil(t, s.History(ctx, "s1"))

	s.Append(ctx, "s1", ConversationTurn{Question: "q1", Answer: "a1"})
	s.Append(ctx, "s1", ConversationTurn{Question: "q2", Answer: "a2"})

	turns := s.History(ctx, "s1")
	require.Len(t, turns, 2)
	assert.Equal(t, "q1", turns[0].Question)
	assert.Equal(t, "q2", turns[1].Question)

	// Sessions are isolated.
	assert.Nil(t, s.History(ctx, "s2"))
}

func TestSessionStoreHistoryIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(nil, time.Minute)
	s.Append(ctx, "s1", ConversationTurn{Question: "q1", Answer: "a1"})

	turns := s.History(ctx, "s1")
	turns[0].Question = "mutated"

	fresh := s.History(ctx, "s1")
	require.Len(t, fresh, 1)
	assert.Equal(t, "q1", fresh[0].Question)
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(nil, 10*time.Millisecond)
	s.Append(ctx, "s1", ConversationTurn{Question: "q", Answer: "a"})

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, s.History(ctx, "s1"))
}

func TestSessionStoreEmptyID(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(nil, time.Minute)
	s.Append(ctx, "", ConversationTurn{Question: "q", Answer: "a"})
	assert.Nil(t, s.History(ctx, ""))
}
