// Package toolutil provides shared helper functions for go_study MCP tools.
package toolutil

// Wrapped is the envelope for single-feature tool responses: a successful
// payload in Result, or Result null with a user-facing Error. Generation
// failures are payload errors, never protocol errors — the client renders
// them instead of retrying the call.
type Wrapped[T any] struct {
	Result *T     `json:"result"`
	Error  string `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK[T any](v T) Wrapped[T] {
	return Wrapped[T]{Result: &v}
}

// Fail wraps a caught error as a null result plus message.
func Fail[T any](err error) Wrapped[T] {
	return Wrapped[T]{Error: err.Error()}
}
