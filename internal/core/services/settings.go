package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driven"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages run defaults stored in the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// The configStore is optional - if nil, built-in defaults are returned.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings with defaults for unset keys.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	settings.InputPath = s.getString(domain.SettingInputPath, settings.InputPath)
	settings.ResultsPath = s.getString(domain.SettingResultsPath, settings.ResultsPath)
	settings.ReportPath = s.getString(domain.SettingReportPath, settings.ReportPath)
	settings.TemplatePath = s.getString(domain.SettingTemplatePath, settings.TemplatePath)

	if _, ok := s.configStore.Get(domain.SettingRatePerSecond); ok {
		if rate := s.configStore.GetFloat(domain.SettingRatePerSecond); rate >= 0 {
			settings.RatePerSecond = rate
		}
	}
	if seconds := s.configStore.GetInt(domain.SettingHTTPTimeout); seconds > 0 {
		settings.HTTPTimeout = time.Duration(seconds) * time.Second
	}

	return settings
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	if !domain.IsSettingKey(key) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSetting, key)
	}
	if s.configStore == nil {
		return fmt.Errorf("set %s: config store not configured", key)
	}

	parsed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Path returns the settings file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case domain.SettingRatePerSecond:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return rate, nil
	case domain.SettingHTTPTimeout:
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		return seconds, nil
	case domain.SettingTemplatePath:
		return value, nil
	default:
		if value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return value, nil
	}
}
