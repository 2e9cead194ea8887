package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lshigami/Lapras/config"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/rs/zerolog/log"
)

// GenerateService proxies prompt requests to the upstream text-generation
// API. The upstream response shape varies between model versions, so the
// reply text is extracted structurally with a recursive fallback and the raw
// payload is passed through untouched.
type GenerateService interface {
	Generate(ctx context.Context, req dto.AIGenerateRequest) (*dto.AIGenerateResponse, error)
}

type generateService struct {
	client *http.Client
	apiURL string
	apiKey string
}

func NewGenerateService(cfg *config.Config) GenerateService {
	return &generateService{
		client: &http.Client{Timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second},
		apiURL: cfg.Gemini.ApiURL,
		apiKey: cfg.Gemini.ApiKey,
	}
}

type generatePayload struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

func (s *generateService) Generate(ctx context.Context, req dto.AIGenerateRequest) (*dto.AIGenerateResponse, error) {
	payload := generatePayload{
		Contents: []generateContent{{Parts: []generatePart{{Text: req.Prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-goog-api-key", s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("Generation upstream unreachable")
		return nil, fmt.Errorf("failed to reach generation upstream: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("Generation upstream returned error status")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}
	}

	var parsed interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// The upstream occasionally answers 2xx with a plain-text body.
		// Wrap it so callers still get a JSON payload instead of an error.
		parsed = map[string]interface{}{"raw_text": string(raw)}
		raw, err = json.Marshal(parsed)
		if err != nil {
			return nil, err
		}
	}

	return &dto.AIGenerateResponse{
		Output: extractReplyText(parsed),
		Raw:    json.RawMessage(raw),
	}, nil
}

// extractReplyText pulls the generated text out of the upstream payload.
// It tries the documented candidates[0].content.parts[].text path first,
// then a depth-first search for any "text" string field, and as a last
// resort hands back the whole payload re-serialized so the caller always
// sees what the upstream said.
func extractReplyText(v interface{}) string {
	if root, ok := v.(map[string]interface{}); ok {
		if candidates, ok := root["candidates"].([]interface{}); ok && len(candidates) > 0 {
			if cand, ok := candidates[0].(map[string]interface{}); ok {
				if content, ok := cand["content"].(map[string]interface{}); ok {
					if parts, ok := content["parts"].([]interface{}); ok {
						var sb strings.Builder
						for _, part := range parts {
							if p, ok := part.(map[string]interface{}); ok {
								if text, ok := p["text"].(string); ok {
									sb.WriteString(text)
								}
							}
						}
						if sb.Len() > 0 {
							return sb.String()
						}
					}
				}
			}
		}
	}
	if found := findTextField(v); found != "" {
		return found
	}
	fallback, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(fallback)
}

func findTextField(v interface{}) string {
	switch node := v.(type) {
	case map[string]interface{}:
		if text, ok := node["text"].(string); ok {
			return text
		}
		for _, child := range node {
			if found := findTextField(child); found != "" {
				return found
			}
		}
	case []interface{}:
		for _, child := range node {
			if found := findTextField(child); found != "" {
				return found
			}
		}
	}
	return ""
}
