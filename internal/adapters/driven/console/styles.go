package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

// Theme defines the colour palette for console output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the table border colour.
	Border lipgloss.Color

	// AWS, Azure and GCP colour the provider headers.
	AWS   lipgloss.Color
	Azure lipgloss.Color
	GCP   lipgloss.Color

	// IBM is drawn black on white.
	IBMForeground lipgloss.Color
	IBMBackground lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:       lipgloss.Color("#7C3AED"), // Purple
		Muted:         lipgloss.Color("#6C7086"), // Medium gray
		Success:       lipgloss.Color("#A6E3A1"), // Green
		Warning:       lipgloss.Color("#F9E2AF"), // Yellow
		Error:         lipgloss.Color("#F38BA8"), // Red
		Border:        lipgloss.Color("#45475A"), // Border gray
		AWS:           lipgloss.Color("#FFA500"), // Orange
		Azure:         lipgloss.Color("#3399FF"),
		GCP:           lipgloss.Color("#FF0000"),
		IBMForeground: lipgloss.Color("#000000"),
		IBMBackground: lipgloss.Color("#FFFFFF"),
	}
}

// Styles contains pre-configured lipgloss styles bound to one renderer.
type Styles struct {
	theme   *Theme
	headers map[domain.ProviderID]lipgloss.Style

	// Title style for the summary heading.
	Title lipgloss.Style

	// Muted style for hints.
	Muted lipgloss.Style

	// Error style for failures.
	Error lipgloss.Style

	// Success style for completed steps.
	Success lipgloss.Style

	// Warning style for skips and item errors.
	Warning lipgloss.Style

	// Spinner style for the progress spinner.
	Spinner lipgloss.Style

	// Border style for the summary table.
	Border lipgloss.Style

	// Cell style for summary table cells.
	Cell lipgloss.Style

	// Header style for the summary table header row.
	Header lipgloss.Style
}

// NewStyles creates styles from a theme. A nil renderer uses the default
// renderer; a nil theme uses DefaultTheme.
func NewStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,
		headers: map[domain.ProviderID]lipgloss.Style{
			domain.ProviderAWS:   r.NewStyle().Bold(true).Foreground(theme.AWS),
			domain.ProviderAzure: r.NewStyle().Bold(true).Foreground(theme.Azure),
			domain.ProviderGCP:   r.NewStyle().Bold(true).Foreground(theme.GCP),
			domain.ProviderIBM: r.NewStyle().
				Bold(true).
				Foreground(theme.IBMForeground).
				Background(theme.IBMBackground),
		},

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Error: r.NewStyle().
			Foreground(theme.Error),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Warning: r.NewStyle().
			Foreground(theme.Warning),

		Spinner: r.NewStyle().
			Foreground(theme.Primary),

		Border: r.NewStyle().
			Foreground(theme.Border),

		Cell: r.NewStyle().
			Padding(0, 1),

		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(theme.Primary),
	}
}

// DefaultStyles returns styles with the default renderer and theme.
func DefaultStyles() *Styles {
	return NewStyles(nil, DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// ProviderHeader returns the header style of a provider.
func (s *Styles) ProviderHeader(id domain.ProviderID) lipgloss.Style {
	if style, ok := s.headers[id]; ok {
		return style
	}
	return s.Title
}
