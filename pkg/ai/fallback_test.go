package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedResult struct {
	text string
	err  error
}

// stubGenerator replays scripted results per call.
type stubGenerator struct {
	calls   int
	results []scriptedResult
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.results) {
		return "", errors.New("unexpected call")
	}
	return s.results[i].text, s.results[i].err
}

func newOllamaTestServer(t *testing.T, response string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "` + response + `", "done": true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFallbackPrefersGemini(t *testing.T) {
	gemini := &stubGenerator{results: []scriptedResult{{text: "[]"}}}
	srv, hits := newOllamaTestServer(t, "should not be used")

	svc := NewFallbackService(gemini, NewOllamaService(srv.URL, "llama3"))

	out, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
	assert.Equal(t, 0, *hits)
}

func TestFallbackUsesOllamaOnQuotaError(t *testing.T) {
	gemini := &stubGenerator{results: []scriptedResult{
		{err: errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")},
	}}
	srv, hits := newOllamaTestServer(t, "fallback output")

	svc := NewFallbackService(gemini, NewOllamaService(srv.URL, "llama3"))

	out, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "fallback output", out)
	assert.Equal(t, 1, *hits)
}

func TestFallbackRetriesGeminiWhenOllamaUnreachable(t *testing.T) {
	gemini := &stubGenerator{results: []scriptedResult{
		{err: errors.New("transient upstream error")},
		{text: "second try"},
	}}
	// A closed server guarantees a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewFallbackService(gemini, NewOllamaService(srv.URL, "llama3"))

	out, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "second try", out)
	assert.Equal(t, 2, gemini.calls)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(errors.New("Error 429: quota exceeded")))
	assert.True(t, isQuotaError(errors.New("rate limit reached")))
	assert.False(t, isQuotaError(errors.New("invalid api key")))
	assert.False(t, isQuotaError(nil))
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(errors.New("dial tcp 127.0.0.1:11434: connection refused")))
	assert.True(t, isConnectionError(errors.New("no such host")))
	assert.False(t, isConnectionError(errors.New("ollama API error (500): boom")))
	assert.False(t, isConnectionError(nil))
}
