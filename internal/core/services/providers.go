package services

import (
	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driving"
)

// Ensure ProviderStatusService implements the interface.
var _ driving.ProviderStatusService = (*ProviderStatusService)(nil)

// ProviderStatusService reports provider configuration from credentials.
// It never contacts a provider.
type ProviderStatusService struct {
	credentials domain.Credentials
}

// NewProviderStatusService creates a new provider status service.
func NewProviderStatusService(credentials domain.Credentials) *ProviderStatusService {
	return &ProviderStatusService{credentials: credentials}
}

// List returns every provider in run order with its credential values
// keyed by environment variable. Values are not masked.
func (s *ProviderStatusService) List() []driving.ProviderStatus {
	ids := domain.AllProviders()
	statuses := make([]driving.ProviderStatus, 0, len(ids))
	for _, id := range ids {
		statuses = append(statuses, driving.ProviderStatus{
			ID:          id,
			Name:        id.DisplayName(),
			Configured:  s.credentials.IsConfigured(id),
			Batch:       id.SupportsBatch(),
			Credentials: s.credentialValues(id),
		})
	}
	return statuses
}

//nolint:gosec // G101: These are environment variable names, not credentials.
func (s *ProviderStatusService) credentialValues(id domain.ProviderID) map[string]string {
	c := s.credentials
	switch id {
	case domain.ProviderAWS:
		return map[string]string{
			"AWS_ACCESS_KEY_ID":     c.AWS.AccessKeyID,
			"AWS_SECRET_ACCESS_KEY": c.AWS.SecretAccessKey,
			"AWS_REGION":            c.AWS.Region,
		}
	case domain.ProviderAzure:
		return map[string]string{
			"AZURE_ENDPOINT": c.Azure.Endpoint,
			"AZURE_KEY":      c.Azure.Key,
		}
	case domain.ProviderGCP:
		return map[string]string{
			"GOOGLE_APPLICATION_CREDENTIALS": c.GCP.CredentialsFile,
		}
	case domain.ProviderIBM:
		return map[string]string{
			"IBM_WATSON_API_KEY": c.IBM.APIKey,
			"IBM_WATSON_URL":     c.IBM.URL,
			"IBM_WATSON_VERSION": c.IBM.Version,
		}
	default:
		return nil
	}
}
