package ai

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrDisabled reports that no text-generation provider is configured.
// Callers treat it as the normal operating mode, not a failure.
var ErrDisabled = errors.New("text generation disabled")

// Generator is the collaborator capability: ask for structured output and
// get parsed JSON back. Implementations must enforce their own timeout and
// must never be required for a request to succeed.
type Generator interface {
	GenerateStructured(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Disabled is the null implementation selected when the provider is off.
type Disabled struct{}

func (Disabled) GenerateStructured(context.Context, string) (json.RawMessage, error) {
	return nil, ErrDisabled
}
