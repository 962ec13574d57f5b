package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transient listen outcomes. The capture loop maps all three to "no
// transcript" and keeps listening.
var (
	// ErrNoSpeech means nothing was heard before the listen timeout.
	ErrNoSpeech = errors.New("no speech detected before timeout")
	// ErrUnintelligible means audio was heard but produced no text.
	ErrUnintelligible = errors.New("could not understand audio")
	// ErrServiceUnavailable means the transcription backend failed.
	ErrServiceUnavailable = errors.New("transcription service unavailable")
)

// IsTransient reports whether the error is one of the recoverable
// listen outcomes.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNoSpeech) ||
		errors.Is(err, ErrUnintelligible) ||
		errors.Is(err, ErrServiceUnavailable)
}

// Recognizer captures one utterance and returns its transcript.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// HTTPRecognizer talks to an external speech-to-text service that owns
// the microphone: one POST per listen window, returning the recognized
// text or a structured no-speech/unintelligible outcome.
type HTTPRecognizer struct {
	baseURL       string
	listenTimeout time.Duration
	phraseLimit   time.Duration
	client        *http.Client
}

// NewHTTPRecognizer creates a recognizer for the given service URL.
// listenTimeout bounds the wait for speech to start; phraseLimit caps
// one utterance.
func NewHTTPRecognizer(baseURL string, listenTimeout, phraseLimit time.Duration) *HTTPRecognizer {
	if listenTimeout <= 0 {
		listenTimeout = 5 * time.Second
	}
	if phraseLimit <= 0 {
		phraseLimit = 30 * time.Second
	}
	return &HTTPRecognizer{
		baseURL:       baseURL,
		listenTimeout: listenTimeout,
		phraseLimit:   phraseLimit,
		// One full listen window plus service overhead.
		client: &http.Client{Timeout: listenTimeout + phraseLimit + 10*time.Second},
	}
}

// Listen blocks for up to one listen window and returns the transcript.
func (r *HTTPRecognizer) Listen(ctx context.Context) (string, error) {
	payload := map[string]interface{}{
		"timeout_seconds":      r.listenTimeout.Seconds(),
		"phrase_limit_seconds": r.phraseLimit.Seconds(),
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/listen", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrServiceUnavailable, resp.StatusCode, string(respBody))
	}

	var result struct {
		Text    string `json:"text"`
		Outcome string `json:"outcome"` // "ok", "no_speech", "unintelligible"
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: invalid response: %v", ErrServiceUnavailable, err)
	}

	switch result.Outcome {
	case "no_speech":
		return "", ErrNoSpeech
	case "unintelligible":
		return "", ErrUnintelligible
	}
	if result.Text == "" {
		return "", ErrUnintelligible
	}
	return result.Text, nil
}
