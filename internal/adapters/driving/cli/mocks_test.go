package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/core/ports/driving"
)

// mockAnalysisService implements driving.AnalysisService for testing.
type mockAnalysisService struct {
	req   domain.RunRequest
	calls int
	err   error
}

func (m *mockAnalysisService) Run(_ context.Context, req domain.RunRequest) (*domain.RunSummary, error) {
	m.calls++
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.RunSummary{RunID: req.RunID, Output: req.Output}, nil
}

// mockProviderStatusService implements driving.ProviderStatusService for testing.
type mockProviderStatusService struct {
	statuses []driving.ProviderStatus
}

func (m *mockProviderStatusService) List() []driving.ProviderStatus {
	return m.statuses
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	set      map[string]string
	err      error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultSettings(),
		set:      make(map[string]string),
	}
}

func (m *mockSettingsService) Get() domain.Settings { return m.settings }

func (m *mockSettingsService) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Path() string { return "/home/test/.sentimeter/config.toml" }

// testEnv swaps the injected services and captures the runtime options.
type testEnv struct {
	analysis  *mockAnalysisService
	providers *mockProviderStatusService
	settings  *mockSettingsService
	opts      RuntimeOptions
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		analysis:  &mockAnalysisService{},
		providers: &mockProviderStatusService{},
		settings:  newMockSettingsService(),
	}

	oldBuilder, oldSettings := buildRuntime, settingsService
	buildRuntime = func(opts RuntimeOptions) (*Runtime, error) {
		env.opts = opts
		return &Runtime{Analysis: env.analysis, Providers: env.providers}, nil
	}
	settingsService = env.settings

	t.Cleanup(func() {
		buildRuntime, settingsService = oldBuilder, oldSettings
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	})
	return env
}

// resetFlags restores flag defaults, since commands are package globals.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
