package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/logger"
)

var (
	runInput    string
	runOutput   string
	runReport   string
	runTemplate string
	runNoReport bool
	runOnly     string
	runRate     float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyse the input sentences with every configured provider",
	Long: `Loads the input document, sends its sentences to each configured provider
in turn (aws, azure, gcp, ibm) and writes the combined result.

The input is a JSON object with a language code and a list of sentences:

  {"language": "en", "sentences": ["I love it", "I hate it"]}

A request error from any provider stops the run and nothing is written.
Flags override the values stored with 'sentimeter settings set'.`,
	Args: cobra.NoArgs,
	RunE: runAnalysis,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", domain.DefaultInputPath, "input JSON document")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", domain.DefaultResultsPath, "combined results file")
	runCmd.Flags().StringVar(&runReport, "report", domain.DefaultReportPath, "HTML report file")
	runCmd.Flags().StringVar(&runTemplate, "template", "", "HTML report template (default built-in)")
	runCmd.Flags().BoolVar(&runNoReport, "no-report", false, "do not write the HTML report")
	runCmd.Flags().StringVar(&runOnly, "only", "", "comma-separated providers to run, e.g. aws,gcp")
	runCmd.Flags().Float64Var(&runRate, "rate", domain.DefaultRatePerSecond, "requests per second for per-sentence providers (0 disables pacing)")
	rootCmd.AddCommand(runCmd)
}

func runAnalysis(cmd *cobra.Command, _ []string) error {
	providers, err := domain.ParseProviderIDs(runOnly)
	if err != nil {
		return err
	}
	if runRate < 0 {
		return fmt.Errorf("%w: rate must not be negative", domain.ErrInvalidInput)
	}

	settings := currentSettings()
	req := domain.RunRequest{
		RunID:     uuid.NewString(),
		InputPath: flagOrSetting(cmd, "input", runInput, settings.InputPath),
		Providers: providers,
		Output: domain.OutputTarget{
			ResultsPath:  flagOrSetting(cmd, "output", runOutput, settings.ResultsPath),
			ReportPath:   flagOrSetting(cmd, "report", runReport, settings.ReportPath),
			TemplatePath: flagOrSetting(cmd, "template", runTemplate, settings.TemplatePath),
		},
	}
	if runNoReport {
		req.Output.ReportPath = ""
	}

	rate := settings.RatePerSecond
	if cmd.Flags().Changed("rate") {
		rate = runRate
	}

	rt, err := newRuntime(RuntimeOptions{
		EnvFile:       envFile,
		Verbose:       logger.IsVerbose(),
		Out:           cmd.OutOrStdout(),
		RatePerSecond: rate,
		HTTPTimeout:   settings.HTTPTimeout,
	})
	if err != nil {
		return err
	}
	if rt.Analysis == nil {
		return fmt.Errorf("analysis service not configured")
	}

	logger.Section("Run")
	logger.Debug("run %s: input=%s output=%s report=%s rate=%.2f/s",
		req.RunID, req.InputPath, req.Output.ResultsPath, req.Output.ReportPath, rate)

	start := time.Now()
	summary, err := rt.Analysis.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Debug("run %s finished in %s, skipped %d provider(s)",
		summary.RunID, time.Since(start).Round(time.Millisecond), len(summary.Skipped))
	return nil
}

// currentSettings returns stored settings, or the defaults without a store.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	return settingsService.Get()
}

// flagOrSetting applies flag > settings file > built-in default.
func flagOrSetting(cmd *cobra.Command, name, flagValue, setting string) string {
	if cmd.Flags().Changed(name) || setting == "" {
		return flagValue
	}
	return setting
}
