package study

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps append-only Q&A conversation threads keyed by session ID.
// L1 is always in-memory; an optional Redis L2 lets threads survive restarts
// and be shared across instances. Threads expire after the configured TTL and
// are never trimmed before it.
type SessionStore struct {
	ttl time.Duration
	rdb *redis.Client // nil = memory only

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	turns     []ConversationTurn
	expiresAt time.Time
}

// NewSessionStore creates a session store with the given TTL. Pass a nil
// Redis client for memory-only operation.
func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionStore{
		ttl:      ttl,
		rdb:      rdb,
		sessions: make(map[string]*sessionEntry),
	}
}

func sessionKey(id string) string { return "study:session:" + id }

// History returns a copy of the conversation thread for a session, in
// chronological order. Unknown or expired sessions return nil.
func (s *SessionStore) History(ctx context.Context, sessionID string) []ConversationTurn {
	if sessionID == "" {
		return nil
	}

	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok && time.Now().Before(entry.expiresAt) {
		turns := make([]ConversationTurn, len(entry.turns))
		copy(turns, entry.turns)
		s.mu.Unlock()
		return turns
	}
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("session store: redis get failed", slog.Any("error", err))
		}
		return nil
	}
	var turns []ConversationTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		slog.Warn("session store: corrupt session dropped", slog.String("session", sessionID))
		return nil
	}

	s.mu.Lock()
	s.sessions[sessionID] = &sessionEntry{turns: turns, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return turns
}

// Append adds one completed turn to a session's thread and refreshes its TTL.
func (s *SessionStore) Append(ctx context.Context, sessionID string, turn ConversationTurn) {
	if sessionID == "" {
		return
	}

	turns := append(s.History(ctx, sessionID), turn)

	s.mu.Lock()
	s.sessions[sessionID] = &sessionEntry{turns: turns, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		slog.Debug("session store: redis set failed", slog.Any("error", err))
	}
}
