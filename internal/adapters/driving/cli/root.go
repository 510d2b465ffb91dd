// Package cli provides the command-line interface for sentimeter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sentimeter/internal/config"
	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driving"
	"github.com/custodia-labs/sentimeter/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	verbose bool
	envFile string
)

// Runtime holds the services that depend on global flags.
type Runtime struct {
	Analysis  driving.AnalysisService
	Providers driving.ProviderStatusService
}

// RuntimeOptions are the inputs used to build a Runtime.
type RuntimeOptions struct {
	// EnvFile is the dotenv file holding provider credentials.
	EnvFile string

	// Verbose prints provider results as they arrive.
	Verbose bool

	// Out receives progress output.
	Out io.Writer

	// RatePerSecond paces per-sentence providers.
	RatePerSecond float64

	// HTTPTimeout bounds each provider request.
	HTTPTimeout time.Duration
}

// RuntimeBuilder creates a Runtime once flags are parsed.
type RuntimeBuilder func(opts RuntimeOptions) (*Runtime, error)

// Services injected by the composition root.
var (
	buildRuntime    RuntimeBuilder
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "sentimeter",
	Short: "Compare sentiment analysis across cloud providers",
	Long: `sentimeter sends a list of sentences to Amazon Comprehend, Azure Text
Analytics, Google Cloud Natural Language and IBM Watson NLU, then writes the
combined responses as JSON and an HTML report comparing their scores.

Providers without credentials are skipped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with provider credentials")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetRuntimeBuilder sets the function creating flag-dependent services.
func SetRuntimeBuilder(b RuntimeBuilder) {
	buildRuntime = b
}

// SetSettingsService sets the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command with ctx and prints the error, if any.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	printError(rootCmd.ErrOrStderr(), err)
	return err
}

// printError writes err once. Provider failures were already shown by the
// progress reporter.
func printError(w io.Writer, err error) {
	if err == nil || errors.Is(err, domain.ErrProviderFailed) {
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
}

func newRuntime(opts RuntimeOptions) (*Runtime, error) {
	if buildRuntime == nil {
		return nil, errors.New("runtime not configured")
	}
	return buildRuntime(opts)
}
