package providers

import (
	"net/http"
	"time"
)

// NewHTTPClient returns a client for provider requests.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
