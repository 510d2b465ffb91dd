// Package sentiment creates sentiment provider adapters from credentials.
package sentiment

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/logger"
	"github.com/custodia-labs/sentimeter/internal/providers"
	"github.com/custodia-labs/sentimeter/internal/providers/comprehend"
	"github.com/custodia-labs/sentimeter/internal/providers/naturallanguage"
	"github.com/custodia-labs/sentimeter/internal/providers/textanalytics"
	"github.com/custodia-labs/sentimeter/internal/providers/watson"
)

// Ensure Factory implements the interface.
var _ driven.ProviderFactory = (*Factory)(nil)

// Options tune the providers a Factory creates.
type Options struct {
	// RatePerSecond paces per-sentence providers. Zero disables pacing.
	RatePerSecond float64

	// HTTPTimeout bounds each request. Zero means no timeout.
	HTTPTimeout time.Duration
}

// Factory creates providers for which credentials are configured.
type Factory struct {
	credentials domain.Credentials
	opts        Options
}

// NewFactory creates a new provider factory.
func NewFactory(credentials domain.Credentials, opts Options) *Factory {
	return &Factory{credentials: credentials, opts: opts}
}

// Create creates the provider for id.
// Returns nil if the provider's credentials are not configured.
func (f *Factory) Create(ctx context.Context, id domain.ProviderID) (driven.SentimentProvider, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, id)
	}
	if !f.credentials.IsConfigured(id) {
		return nil, nil
	}

	// Each provider gets a fresh limiter so it starts with a full bucket.
	limiter := providers.NewRateLimiter(f.opts.RatePerSecond)
	logger.Debug("creating %s provider (rate %.2f/s, timeout %s)", id, limiter.Limit(), f.opts.HTTPTimeout)

	switch id {
	case domain.ProviderAWS:
		return provider(comprehend.New(f.credentials.AWS, f.opts.HTTPTimeout))

	case domain.ProviderAzure:
		return provider(textanalytics.New(f.credentials.Azure, f.opts.HTTPTimeout))

	case domain.ProviderGCP:
		return provider(naturallanguage.New(ctx, f.credentials.GCP, limiter, f.opts.HTTPTimeout))

	case domain.ProviderIBM:
		return provider(watson.New(f.credentials.IBM, limiter, f.opts.HTTPTimeout))

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, id)
	}
}

// provider converts a constructor result without leaking a typed nil.
func provider[P driven.SentimentProvider](p P, err error) (driven.SentimentProvider, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
