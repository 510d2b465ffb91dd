package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "./input.json", s.InputPath)
	assert.Equal(t, "./result.json", s.ResultsPath)
	assert.Equal(t, "./result.html", s.ReportPath)
	assert.Empty(t, s.TemplatePath)
	assert.Equal(t, 5.0, s.RatePerSecond)
	assert.Zero(t, s.HTTPTimeout)
}

func TestIsSettingKey(t *testing.T) {
	for _, key := range SettingKeys() {
		assert.True(t, IsSettingKey(key), key)
	}
	assert.False(t, IsSettingKey("ai.provider"))
	assert.False(t, IsSettingKey(""))
}

func TestRunRequest_Includes(t *testing.T) {
	all := RunRequest{}
	for _, id := range AllProviders() {
		assert.True(t, all.Includes(id))
	}

	only := RunRequest{Providers: []ProviderID{ProviderGCP}}
	assert.True(t, only.Includes(ProviderGCP))
	assert.False(t, only.Includes(ProviderAWS))
}
