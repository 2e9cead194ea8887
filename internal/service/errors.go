package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the controller layer to map onto HTTP statuses.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("resource conflict")
	ErrValidation = errors.New("validation failed")
)

// UpstreamError is returned by the generation proxy when the upstream service
// answered with a non-2xx status. The upstream body is relayed to the caller.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
