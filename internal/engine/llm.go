package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// ErrUpstreamTimeout marks a generation call that exceeded its time budget.
// Distinct from provider errors so callers can report "upstream timed out".
var ErrUpstreamTimeout = errors.New("upstream timed out")

// limiter guards the LLM provider against call bursts. Nil = unlimited.
var limiter *rate.Limiter

func initLimiter() {
	if cfg.LLMRateLimit <= 0 {
		limiter = nil
		return
	}
	burst := cfg.LLMRateBurst
	if burst < 1 {
		burst = 1
	}
	limiter = rate.NewLimiter(rate.Limit(cfg.LLMRateLimit), burst)
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// The call is rate-limited and bounded by cfg.GenTimeout.
func CallLLM(ctx context.Context, prompt string, opts ...llm.ChatOption) (string, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	if cfg.GenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.GenTimeout)
		defer cancel()
	}

	IncrLLMCalls()
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt, opts...)
	if err != nil {
		IncrLLMErrors()
		return "", mapLLMError(err)
	}
	return stripFences(resp), nil
}

// mapLLMError converts a deadline expiry into the upstream-timeout sentinel
// so callers can report "upstream timed out" distinctly from provider errors.
func mapLLMError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrUpstreamTimeout, cfg.GenTimeout)
	}
	return err
}

// CallLLMCreative sends a prompt with an elevated temperature, for features
// that must vary across invocations (flashcard regeneration).
func CallLLMCreative(ctx context.Context, prompt string) (string, error) {
	return CallLLM(ctx, prompt, llm.WithChatTemperature(0.9))
}

// CallLLMJSON sends a prompt and decodes the response as JSON into T.
// The model's return value is untrusted input: a decode failure is an error,
// never a partially-populated value.
func CallLLMJSON[T any](ctx context.Context, prompt string, opts ...llm.ChatOption) (*T, error) {
	raw, err := CallLLM(ctx, prompt, opts...)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode LLM response: %w (raw: %s)", err, TruncateRunes(raw, 200, "..."))
	}
	return &out, nil
}

// ExtractJSONAnswer extracts the "answer" field from malformed JSON
// where the value may contain unescaped newlines or special characters.
func ExtractJSONAnswer(raw string) string {
	prefix := `"answer"`
	idx := strings.Index(raw, prefix)
	if idx < 0 {
		return ""
	}
	rest := raw[idx+len(prefix):]
	rest = strings.TrimSpace(rest)
	if len(rest) == 0 || rest[0] != ':' {
		return ""
	}
	rest = strings.TrimSpace(rest[1:])
	if len(rest) == 0 || rest[0] != '"' {
		return ""
	}
	rest = rest[1:] // skip opening quote

	var sb strings.Builder
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\\' && i+1 < len(rest) {
			if rest[i+1] == '"' {
				sb.WriteByte('"')
				i++
				continue
			}
			if rest[i+1] == 'n' {
				sb.WriteByte('\n')
				i++
				continue
			}
			sb.WriteByte(rest[i])
			continue
		}
		if rest[i] == '"' {
			return sb.String()
		}
		sb.WriteByte(rest[i])
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	return ""
}
