package driving

import "github.com/custodia-labs/sentimeter/internal/core/domain"

// SettingsService manages user defaults for runs.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.Settings

	// Set validates and persists one setting.
	// Returns ErrUnknownSetting for unrecognised keys.
	Set(key, value string) error

	// Path returns the settings file path.
	Path() string
}
