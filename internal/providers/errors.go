package providers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 1024

// StatusError is a non-2xx response from a REST provider.
type StatusError struct {
	Provider   domain.ProviderID
	StatusCode int
	Body       string
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Unwrap maps the status code to a domain error so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	return ClassifyStatus(e.StatusCode)
}

// ClassifyStatus maps an HTTP status code to a domain error.
// Returns nil for codes without a specific meaning.
func ClassifyStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthInvalid
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return nil
	}
}

// CheckResponse returns a StatusError if resp is not 2xx.
// The body is read (up to a limit) but not closed.
func CheckResponse(provider domain.ProviderID, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Provider:   provider,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
