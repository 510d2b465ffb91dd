package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sentimeter/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sentimeter/internal/adapters/driven/console"
	"github.com/custodia-labs/sentimeter/internal/adapters/driven/input"
	"github.com/custodia-labs/sentimeter/internal/adapters/driven/output"
	"github.com/custodia-labs/sentimeter/internal/adapters/driven/sentiment"
	"github.com/custodia-labs/sentimeter/internal/adapters/driving/cli"
	"github.com/custodia-labs/sentimeter/internal/config"
	"github.com/custodia-labs/sentimeter/internal/core/services"
	"github.com/custodia-labs/sentimeter/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetRuntimeBuilder(buildRuntime)

	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("settings unavailable, using defaults: %v", err)
		cli.SetSettingsService(services.NewSettingsService(nil))
	} else {
		cli.SetSettingsService(services.NewSettingsService(configStore))
	}

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildRuntime wires credentials, providers and output adapters once flags
// are known.
func buildRuntime(opts cli.RuntimeOptions) (*cli.Runtime, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	creds := cfg.Credentials()

	factory := sentiment.NewFactory(creds, sentiment.Options{
		RatePerSecond: opts.RatePerSecond,
		HTTPTimeout:   opts.HTTPTimeout,
	})
	reporter := console.NewReporter(opts.Out, console.WithVerbose(opts.Verbose))

	return &cli.Runtime{
		Analysis: services.NewAnalysisService(
			input.NewLoader(),
			factory,
			output.NewWriter(),
			reporter,
		),
		Providers: services.NewProviderStatusService(creds),
	}, nil
}
