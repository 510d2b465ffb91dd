// Package config loads provider credentials from the environment.
package config

import "github.com/custodia-labs/sentimeter/internal/core/domain"

// Config holds the credentials of every provider.
// A provider whose required values are empty is skipped at run time.
type Config struct {
	AWS   AWSConfig
	Azure AzureConfig
	GCP   GCPConfig
	IBM   IBMConfig
}

// AWSConfig holds Amazon Comprehend settings.
type AWSConfig struct {
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `env:"AWS_SESSION_TOKEN"`
	Region          string `env:"AWS_REGION"            env-default:"us-east-1"`
}

// AzureConfig holds Azure Text Analytics settings.
type AzureConfig struct {
	Endpoint string `env:"AZURE_ENDPOINT"`
	Key      string `env:"AZURE_KEY"`
}

// GCPConfig holds Google Cloud Natural Language settings.
type GCPConfig struct {
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS" env-default:"./gcloud-credentials.json"`
}

// IBMConfig holds IBM Watson NLU settings.
type IBMConfig struct {
	APIKey  string `env:"IBM_WATSON_API_KEY"`
	URL     string `env:"IBM_WATSON_URL"`
	Version string `env:"IBM_WATSON_VERSION" env-default:"2020-08-01"`
	IAMURL  string `env:"IBM_IAM_URL"        env-default:"https://iam.cloud.ibm.com/identity/token"`
}

// Credentials converts the configuration to domain credentials.
func (c *Config) Credentials() domain.Credentials {
	return domain.Credentials{
		AWS: domain.AWSCredentials{
			AccessKeyID:     c.AWS.AccessKeyID,
			SecretAccessKey: c.AWS.SecretAccessKey,
			SessionToken:    c.AWS.SessionToken,
			Region:          c.AWS.Region,
		},
		Azure: domain.AzureCredentials{
			Endpoint: c.Azure.Endpoint,
			Key:      c.Azure.Key,
		},
		GCP: domain.GCPCredentials{
			CredentialsFile: c.GCP.CredentialsFile,
		},
		IBM: domain.IBMCredentials{
			APIKey:  c.IBM.APIKey,
			URL:     c.IBM.URL,
			Version: c.IBM.Version,
			IAMURL:  c.IBM.IAMURL,
		},
	}
}
