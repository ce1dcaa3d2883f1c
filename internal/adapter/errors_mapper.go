package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps backend response codes onto the package sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// backendErrorEnvelope is the JSON shape the backend wraps failures in.
type backendErrorEnvelope struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// mapHTTPError turns a failed response into a sentinel error carrying the
// backend's error message. Non-JSON bodies are passed through as-is, and
// statuses without a sentinel keep the numeric code in the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))

	var envelope backendErrorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		detail = envelope.Message
		if envelope.Type != "" {
			detail = envelope.Type + ": " + detail
		}
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}
