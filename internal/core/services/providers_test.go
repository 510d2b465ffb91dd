package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

func TestProviderStatusService_List(t *testing.T) {
	svc := NewProviderStatusService(domain.Credentials{
		AWS:   domain.AWSCredentials{AccessKeyID: "AKIAEXAMPLE", SecretAccessKey: "secret", Region: "eu-west-1"},
		Azure: domain.AzureCredentials{Endpoint: "https://example.cognitiveservices.azure.com"},
	})

	statuses := svc.List()

	require.Len(t, statuses, 4)
	assert.Equal(t, domain.ProviderAWS, statuses[0].ID)
	assert.Equal(t, "Amazon Comprehend", statuses[0].Name)
	assert.True(t, statuses[0].Configured)
	assert.True(t, statuses[0].Batch)
	assert.Equal(t, "eu-west-1", statuses[0].Credentials["AWS_REGION"])

	assert.Equal(t, domain.ProviderAzure, statuses[1].ID)
	assert.False(t, statuses[1].Configured, "key is missing")
	assert.Equal(t, "", statuses[1].Credentials["AZURE_KEY"])

	assert.False(t, statuses[2].Configured)
	assert.False(t, statuses[2].Batch)
	assert.Contains(t, statuses[2].Credentials, "GOOGLE_APPLICATION_CREDENTIALS")

	assert.Equal(t, domain.ProviderIBM, statuses[3].ID)
	assert.Contains(t, statuses[3].Credentials, "IBM_WATSON_API_KEY")
}
