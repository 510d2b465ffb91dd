package domain

import "os"

// AWSCredentials configures Amazon Comprehend.
type AWSCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
}

// IsConfigured returns true if the key pair is present.
func (c AWSCredentials) IsConfigured() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// AzureCredentials configures Azure Text Analytics.
type AzureCredentials struct {
	Endpoint string
	Key      string
}

// IsConfigured returns true if both endpoint and key are present.
func (c AzureCredentials) IsConfigured() bool {
	return c.Endpoint != "" && c.Key != ""
}

// GCPCredentials configures Google Cloud Natural Language.
type GCPCredentials struct {
	// CredentialsFile is a service account or authorised user JSON file.
	CredentialsFile string
}

// IsConfigured returns true if the credentials file exists.
func (c GCPCredentials) IsConfigured() bool {
	if c.CredentialsFile == "" {
		return false
	}
	info, err := os.Stat(c.CredentialsFile)
	return err == nil && !info.IsDir()
}

// IBMCredentials configures IBM Watson NLU.
type IBMCredentials struct {
	APIKey  string
	URL     string
	Version string
	IAMURL  string
}

// IsConfigured returns true if both API key and service URL are present.
func (c IBMCredentials) IsConfigured() bool {
	return c.APIKey != "" && c.URL != ""
}

// Credentials holds the credentials of every provider.
type Credentials struct {
	AWS   AWSCredentials
	Azure AzureCredentials
	GCP   GCPCredentials
	IBM   IBMCredentials
}

// IsConfigured reports whether the provider's required credentials are present.
func (c Credentials) IsConfigured(id ProviderID) bool {
	switch id {
	case ProviderAWS:
		return c.AWS.IsConfigured()
	case ProviderAzure:
		return c.Azure.IsConfigured()
	case ProviderGCP:
		return c.GCP.IsConfigured()
	case ProviderIBM:
		return c.IBM.IsConfigured()
	default:
		return false
	}
}
