package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/Lapras/config"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateService(upstreamURL string) GenerateService {
	cfg := &config.Config{}
	cfg.Gemini.ApiURL = upstreamURL
	cfg.Gemini.ApiKey = "test-key"
	cfg.Gemini.TimeoutSeconds = 5
	return NewGenerateService(cfg)
}

func TestGenerateExtractsCandidateText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-goog-api-key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "contents")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello"},{"text":" world"}]}}]}`))
	}))
	defer upstream.Close()

	svc := newGenerateService(upstream.URL)
	resp, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.Output)
	assert.NotEmpty(t, resp.Raw)
}

func TestGenerateFallsBackToRecursiveTextSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"nested":[{"text":"found me"}]}}`))
	}))
	defer upstream.Close()

	svc := newGenerateService(upstream.URL)
	resp, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "found me", resp.Output)
}

func TestGenerateReserializesPayloadWithoutTextField(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foo":"bar"}`))
	}))
	defer upstream.Close()

	svc := newGenerateService(upstream.URL)
	resp, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, `{"foo":"bar"}`, resp.Output)
}

func TestGenerateWrapsNonJSONBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("model is warming up"))
	}))
	defer upstream.Close()

	svc := newGenerateService(upstream.URL)
	resp, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.NoError(t, err)

	var wrapped map[string]string
	require.NoError(t, json.Unmarshal(resp.Raw, &wrapped))
	assert.Equal(t, "model is warming up", wrapped["raw_text"])
	assert.Equal(t, `{"raw_text":"model is warming up"}`, resp.Output)
}

func TestGenerateRelaysUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer upstream.Close()

	svc := newGenerateService(upstream.URL)
	_, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Contains(t, string(upstreamErr.Body), "quota exceeded")
}

func TestGenerateNetworkError(t *testing.T) {
	// Closed server to force a connection failure.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := newGenerateService(upstream.URL)
	_, err := svc.Generate(context.Background(), dto.AIGenerateRequest{Prompt: "hi"})
	require.Error(t, err)

	// Connection failures are plain errors, not relayed upstream statuses.
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}
