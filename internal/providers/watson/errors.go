package watson

import (
	"context"
	"errors"

	"github.com/IBM/go-sdk-core/v5/core"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/providers"
)

// WrapError attaches the HTTP status of a failed SDK call so 401/403 and 429
// match domain.ErrAuthInvalid and domain.ErrRateLimited.
// Token failures carry the IAM server's response instead of resp.
func WrapError(resp *core.DetailedResponse, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var authErr *core.AuthenticationError
	if errors.As(err, &authErr) && authErr.Response != nil {
		resp = authErr.Response
	}
	if resp == nil || resp.StatusCode == 0 {
		return err
	}
	return &providers.StatusError{
		Provider:   domain.ProviderIBM,
		StatusCode: resp.StatusCode,
		Body:       err.Error(),
	}
}
