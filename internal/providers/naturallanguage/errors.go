package naturallanguage

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

// IsUnauthorized returns true if the error indicates invalid credentials
// or insufficient permissions.
func IsUnauthorized(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// IsInvalidArgument returns true if the API rejected the request,
// e.g. for an unsupported language.
func IsInvalidArgument(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusBadRequest
	}
	return false
}

// WrapError annotates a Google API error with a domain error.
func WrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUnauthorized(err):
		return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
	case IsRateLimited(err):
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case IsInvalidArgument(err):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	default:
		return err
	}
}
