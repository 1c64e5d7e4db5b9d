// Package sutra implements the generation.ChatCompleter interface against the
// Sutra chat-completion API, an OpenAI-compatible REST endpoint. The API key
// is supplied by the caller on every request, so the client holds no
// credential state.
package sutra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/generation"
)

// DefaultBaseURL is the production Sutra API endpoint.
const DefaultBaseURL = "https://api.two.ai/v2"

const defaultTimeout = 60 * time.Second

// Client calls the Sutra chat-completions endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Sutra client for the given base URL. An empty baseURL
// selects the production endpoint. If logger is nil, the default logger is
// used.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With(slog.String("component", "sutra_client")),
	}
}

// Ensure Client implements the generation.ChatCompleter interface
var _ generation.ChatCompleter = (*Client)(nil)

// chatCompletionRequest is the wire format of a chat-completion call.
type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []generation.Message `json:"messages"`
	MaxTokens   int                  `json:"max_tokens,omitempty"`
	Temperature float64              `json:"temperature"`
}

// chatCompletionResponse is the subset of the reply the client consumes.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// errorResponse is the provider's error envelope.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implements generation.ChatCompleter. It sends the request to the
// chat-completions endpoint and returns the text of the first choice.
func (c *Client) Complete(ctx context.Context, req generation.ChatRequest) (string, error) {
	if req.APIKey == "" {
		return "", generation.ErrMissingAPIKey
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", generation.ErrCompletionFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", generation.ErrCompletionFailed, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	c.logger.DebugContext(ctx, "calling chat completion endpoint",
		slog.String("model", req.Model),
		slog.Int("max_tokens", req.MaxTokens))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrCompletionFailed, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	// Bound the read; completion replies are small.
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", generation.ErrCompletionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s",
				generation.ErrCompletionFailed, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", generation.ErrCompletionFailed, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", generation.ErrCompletionFailed, err)
	}

	if len(completion.Choices) == 0 {
		return "", generation.ErrEmptyResponse
	}

	return completion.Choices[0].Message.Content, nil
}
