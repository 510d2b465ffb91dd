package driven

import (
	"context"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

// SentimentProvider analyses a list of sentences with one cloud service.
type SentimentProvider interface {
	// ID returns the provider identifier.
	ID() domain.ProviderID

	// Analyze submits the sentences and returns the provider's raw result.
	// Per-sentence arrays in the result follow the order of sentences.
	// Any request failure is returned as an error; there are no retries.
	Analyze(ctx context.Context, language string, sentences []string) (domain.ProviderResult, error)

	// Close releases resources held by the provider.
	Close() error
}

// ProviderFactory creates sentiment providers from credentials.
type ProviderFactory interface {
	// Create returns the provider for id.
	// Returns (nil, nil) if the provider's credentials are not configured.
	// Returns ErrUnsupportedProvider if id is unknown.
	Create(ctx context.Context, id domain.ProviderID) (SentimentProvider, error)
}
