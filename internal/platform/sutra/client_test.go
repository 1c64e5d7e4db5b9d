package sutra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/generation"
)

func testChatRequest() generation.ChatRequest {
	return generation.ChatRequest{
		APIKey:      "sutra_testkey12345",
		Model:       "sutra-v2",
		Messages:    []generation.Message{{Role: "user", Content: "hello"}},
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

func TestCompleteSendsWellFormedRequest(t *testing.T) {
	t.Parallel()

	var (
		gotPath   string
		gotAuth   string
		gotCType  string
		gotBody   chatCompletionRequest
		decodeErr error
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCType = r.Header.Get("Content-Type")
		decodeErr = json.NewDecoder(r.Body).Decode(&gotBody)

		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "hi there"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	reply, err := client.Complete(context.Background(), testChatRequest())
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sutra_testkey12345", gotAuth)
	assert.Equal(t, "application/json", gotCType)
	require.NoError(t, decodeErr)
	assert.Equal(t, "sutra-v2", gotBody.Model)
	assert.Equal(t, 1024, gotBody.MaxTokens)
	assert.InDelta(t, 0.7, gotBody.Temperature, 1e-9)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "hello", gotBody.Messages[0].Content)
}

func TestCompleteMissingAPIKey(t *testing.T) {
	t.Parallel()

	client := NewClient("http://unused.invalid", nil)

	req := testChatRequest()
	req.APIKey = ""
	_, err := client.Complete(context.Background(), req)

	assert.ErrorIs(t, err, generation.ErrMissingAPIKey)
}

func TestCompleteNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Complete(context.Background(), testChatRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrCompletionFailed)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestCompleteNonOKStatusWithoutErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Complete(context.Background(), testChatRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrCompletionFailed)
	assert.Contains(t, err.Error(), "status 502")
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Complete(context.Background(), testChatRequest())

	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
}

func TestCompleteMalformedResponseBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Complete(context.Background(), testChatRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrCompletionFailed)
}

func TestCompleteContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, testChatRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrCompletionFailed)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient("", nil)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
