package domain

import "fmt"

// CombinedResult is the per-run aggregation of every provider's result.
// A nil slot means the provider was skipped; it serialises as null.
type CombinedResult struct {
	AWS   *ComprehendResult      `json:"aws"`
	Azure *TextAnalyticsResult   `json:"azure"`
	GCP   *NaturalLanguageResult `json:"gcp"`
	IBM   *WatsonResult          `json:"ibm"`
}

// Set places a provider result into its slot.
func (c *CombinedResult) Set(result ProviderResult) error {
	switch r := result.(type) {
	case *ComprehendResult:
		c.AWS = r
	case *TextAnalyticsResult:
		c.Azure = r
	case *NaturalLanguageResult:
		c.GCP = r
	case *WatsonResult:
		c.IBM = r
	default:
		return fmt.Errorf("%w: result type %T", ErrUnsupportedProvider, result)
	}
	return nil
}

// Get returns the result for a provider, or nil if the slot is empty.
func (c *CombinedResult) Get(id ProviderID) ProviderResult {
	switch id {
	case ProviderAWS:
		if c.AWS != nil {
			return c.AWS
		}
	case ProviderAzure:
		if c.Azure != nil {
			return c.Azure
		}
	case ProviderGCP:
		if c.GCP != nil {
			return c.GCP
		}
	case ProviderIBM:
		if c.IBM != nil {
			return c.IBM
		}
	}
	return nil
}

// Providers returns the providers with a result, in run order.
func (c *CombinedResult) Providers() []ProviderID {
	var ids []ProviderID
	for _, id := range AllProviders() {
		if c.Get(id) != nil {
			ids = append(ids, id)
		}
	}
	return ids
}
