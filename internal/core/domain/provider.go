package domain

import (
	"fmt"
	"strings"
)

// ProviderID identifies a cloud sentiment-analysis provider.
type ProviderID string

// Available providers, in run order.
const (
	// ProviderAWS is Amazon Comprehend.
	ProviderAWS ProviderID = "aws"

	// ProviderAzure is Azure Text Analytics.
	ProviderAzure ProviderID = "azure"

	// ProviderGCP is Google Cloud Natural Language.
	ProviderGCP ProviderID = "gcp"

	// ProviderIBM is IBM Watson Natural Language Understanding.
	ProviderIBM ProviderID = "ibm"
)

// AllProviders returns every provider in the order they are run.
func AllProviders() []ProviderID {
	return []ProviderID{ProviderAWS, ProviderAzure, ProviderGCP, ProviderIBM}
}

// IsValid returns true if the provider is recognised.
func (p ProviderID) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP, ProviderIBM:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p ProviderID) String() string {
	return string(p)
}

// DisplayName returns the product name shown in console output.
func (p ProviderID) DisplayName() string {
	switch p {
	case ProviderAWS:
		return "Amazon Comprehend"
	case ProviderAzure:
		return "Azure Text Analytics"
	case ProviderGCP:
		return "Google Cloud Natural Language"
	case ProviderIBM:
		return "IBM Watson NLU"
	default:
		return "Unknown"
	}
}

// SupportsBatch returns true if the provider accepts many sentences per call.
// The others are called once per sentence.
func (p ProviderID) SupportsBatch() bool {
	return p == ProviderAWS || p == ProviderAzure
}

// CredentialHint tells the user where the provider's credentials come from.
func (p ProviderID) CredentialHint() string {
	if p == ProviderGCP {
		return "Please check how to authenticate Google Cloud (GOOGLE_APPLICATION_CREDENTIALS) if this was not intentional."
	}
	return "Please check your .env file if this was not intentional."
}

// ParseProviderIDs parses a comma-separated provider list such as "aws,gcp".
// An empty string yields nil, meaning every provider. A list made only of
// separators names no provider and is rejected.
func ParseProviderIDs(csv string) ([]ProviderID, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}

	var ids []ProviderID
	seen := make(map[ProviderID]bool)
	for _, part := range strings.Split(csv, ",") {
		id := ProviderID(strings.ToLower(strings.TrimSpace(part)))
		if id == "" {
			continue
		}
		if !id.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, part)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no provider in %q", ErrUnsupportedProvider, csv)
	}
	return ids, nil
}
