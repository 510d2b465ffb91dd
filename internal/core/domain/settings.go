package domain

import "time"

// Settings keys, as stored in the settings file.
const (
	SettingInputPath     = "input.path"
	SettingResultsPath   = "output.results"
	SettingReportPath    = "output.report"
	SettingTemplatePath  = "output.template"
	SettingRatePerSecond = "rate.per_second"
	SettingHTTPTimeout   = "http.timeout_seconds"
)

// Default settings values.
const (
	DefaultInputPath     = "./input.json"
	DefaultResultsPath   = "./result.json"
	DefaultReportPath    = "./result.html"
	DefaultRatePerSecond = 5.0
)

// SettingKeys returns every recognised settings key.
func SettingKeys() []string {
	return []string{
		SettingInputPath,
		SettingResultsPath,
		SettingReportPath,
		SettingTemplatePath,
		SettingRatePerSecond,
		SettingHTTPTimeout,
	}
}

// IsSettingKey returns true if key is a recognised settings key.
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Settings holds user defaults for runs.
type Settings struct {
	// InputPath is the default input document.
	InputPath string

	// ResultsPath is the default combined results file.
	ResultsPath string

	// ReportPath is the default HTML report file.
	ReportPath string

	// TemplatePath overrides the built-in report template when set.
	TemplatePath string

	// RatePerSecond paces per-sentence providers. Zero disables pacing.
	RatePerSecond float64

	// HTTPTimeout bounds each provider request. Zero means no timeout.
	HTTPTimeout time.Duration
}

// DefaultSettings returns settings with built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		InputPath:     DefaultInputPath,
		ResultsPath:   DefaultResultsPath,
		ReportPath:    DefaultReportPath,
		RatePerSecond: DefaultRatePerSecond,
	}
}
