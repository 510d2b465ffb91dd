package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage run defaults",
	Long: `View and change the defaults used by 'sentimeter run'.

Settings are stored in ~/.sentimeter/config.toml. Command-line flags
override them.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Available keys:
  input.path             input JSON document
  output.results         combined results file
  output.report          HTML report file
  output.template        HTML report template (empty for built-in)
  rate.per_second        requests per second for per-sentence providers
  http.timeout_seconds   timeout of each provider request (0 for none)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Input]")
	cmd.Printf("  %s: %s\n", domain.SettingInputPath, settings.InputPath)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  %s: %s\n", domain.SettingResultsPath, settings.ResultsPath)
	cmd.Printf("  %s: %s\n", domain.SettingReportPath, settings.ReportPath)
	template := settings.TemplatePath
	if template == "" {
		template = "(built-in)"
	}
	cmd.Printf("  %s: %s\n", domain.SettingTemplatePath, template)
	cmd.Println()

	cmd.Println("[Requests]")
	rate := fmt.Sprintf("%g/s", settings.RatePerSecond)
	if settings.RatePerSecond == 0 {
		rate = "unlimited"
	}
	cmd.Printf("  %s: %s\n", domain.SettingRatePerSecond, rate)
	timeout := settings.HTTPTimeout.String()
	if settings.HTTPTimeout == 0 {
		timeout = "none"
	}
	cmd.Printf("  %s: %s\n", domain.SettingHTTPTimeout, timeout)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s set to %q\n", key, value)
	return nil
}
