// Package completion talks to the hosted chat-completion API that answers
// questions about documents.
package completion

import (
	"context"
	"fmt"
)

// Completer turns a prompt into generated text. Implementations make exactly
// one attempt per call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderError is returned for every failed completion: transport errors,
// non-2xx responses (auth, rate limit, server) and unusable response bodies.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("provider error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("provider error: status=%d message=%s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Err)
	}
	return "provider error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
