package driving

import (
	"context"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

// AnalysisService runs the sentiment collection pipeline.
type AnalysisService interface {
	// Run loads the input, queries each selected provider in order and
	// writes the combined result. A provider request error halts the run
	// and no output is written.
	Run(ctx context.Context, req domain.RunRequest) (*domain.RunSummary, error)
}

// ProviderStatus describes a provider's configuration without contacting it.
type ProviderStatus struct {
	ID          domain.ProviderID
	Name        string
	Configured  bool
	Batch       bool
	Credentials map[string]string
}

// ProviderStatusService reports which providers are configured.
type ProviderStatusService interface {
	// List returns every provider in run order.
	List() []ProviderStatus
}
