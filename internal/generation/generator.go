package generation

import "context"

// Message is a single chat message sent to the language model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes one chat-completion call. The API key is supplied by
// the caller on every request; the service holds no credential of its own.
type ChatRequest struct {
	APIKey      string
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// ChatCompleter is the boundary between the application core and the external
// chat-completion service. Implementations send the request to the provider
// and return the raw text of the model's reply.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
