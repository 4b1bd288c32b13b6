package openai

import "errors"

var (
	// ErrNoAPIKey is returned when a responder is requested without a credential.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrEmptyCompletion is returned when the model produces no choices.
	ErrEmptyCompletion = errors.New("model returned no completion")
)
