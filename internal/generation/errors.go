package generation

import "errors"

// Common errors returned by chat-completion implementations.
var (
	// ErrMissingAPIKey is returned when a request carries no API key.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrCompletionFailed is returned when the chat-completion call fails.
	ErrCompletionFailed = errors.New("chat completion failed")

	// ErrEmptyResponse is returned when the provider reply contains no choices.
	ErrEmptyResponse = errors.New("empty response from language model")
)
