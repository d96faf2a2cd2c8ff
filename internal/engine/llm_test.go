package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapLLMError(t *testing.T) {
	if err := mapLLMError(context.DeadlineExceeded); !errors.Is(err, ErrUpstreamTimeout) {
		t.Errorf("deadline expiry not mapped to ErrUpstreamTimeout: %v", err)
	}

	// HTTP transports wrap the context error; the mapping must see through.
	wrapped := fmt.Errorf("Post \"/v1/chat\": %w", context.DeadlineExceeded)
	if err := mapLLMError(wrapped); !errors.Is(err, ErrUpstreamTimeout) {
		t.Errorf("wrapped deadline expiry not mapped: %v", err)
	}

	plain := errors.New("rate limited")
	if err := mapLLMError(plain); err != plain {
		t.Errorf("non-deadline error must pass through unchanged, got %v", err)
	}
	if err := mapLLMError(context.Canceled); errors.Is(err, ErrUpstreamTimeout) {
		t.Error("cancellation must not be reported as an upstream timeout")
	}
}

func TestExtractJSONAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"well formed", `{"answer": "hello"}`, "hello"},
		{"escaped quote", `{"answer": "say \"hi\""}`, `say "hi"`},
		{"escaped newline", `{"answer": "line1\nline2"}`, "line1\nline2"},
		{"unterminated string", `{"answer": "trailing`, "trailing"},
		{"no answer field", `{"other": "x"}`, ""},
		{"not json", "plain text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONAnswer(tt.in); got != tt.want {
				t.Errorf("ExtractJSONAnswer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormTargetLanguage(t *testing.T) {
	if got := NormTargetLanguage(""); got != "English" {
		t.Errorf("NormTargetLanguage(\"\") = %q, want English", got)
	}
	if got := NormTargetLanguage("  Spanish "); got != "Spanish" {
		t.Errorf("NormTargetLanguage = %q, want Spanish", got)
	}
}

func TestCleanHTML(t *testing.T) {
	if got := CleanHTML(`<font color="#AAA">hello <b>world</b></font> `); got != "hello world" {
		t.Errorf("CleanHTML = %q", got)
	}
}
