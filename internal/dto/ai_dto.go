package dto

import "encoding/json"

type AIGenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AIGenerateResponse carries the normalized text plus the untouched upstream
// payload so callers can inspect anything the extractor missed.
type AIGenerateResponse struct {
	Output string          `json:"output"`
	Raw    json.RawMessage `json:"raw"`
}
