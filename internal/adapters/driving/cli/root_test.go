package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
	"github.com/custodia-labs/sentimeter/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "sentimeter", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func executeWithContext(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return buf.String(), err
}

func TestExecute_ProviderFailureNotRepeated(t *testing.T) {
	env := setupTest(t)
	env.analysis.err = fmt.Errorf("%w: azure: unexpected status 500", domain.ErrProviderFailed)

	out, err := executeWithContext("run")

	require.Error(t, err)
	assert.NotContains(t, out, "Error:")
	assert.NotContains(t, out, "unexpected status 500")
}

func TestExecute_PrintsErrorOnce(t *testing.T) {
	setupTest(t)
	buildRuntime = func(RuntimeOptions) (*Runtime, error) {
		return nil, errors.New("config: read .env: bad line")
	}

	out, err := executeWithContext("run")

	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(out, "Error: config: read .env: bad line"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"run", "providers", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
	assert.Equal(t, "false", v.DefValue)

	e := rootCmd.PersistentFlags().Lookup("env-file")
	require.NotNil(t, e)
	assert.Equal(t, ".env", e.DefValue)
}

func TestRootCmd_VerboseEnablesDebug(t *testing.T) {
	setupTest(t)
	defer logger.SetVerbose(false)

	_, err := executeCommand("version", "--verbose")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}

func TestNewRuntime_NotConfigured(t *testing.T) {
	old := buildRuntime
	buildRuntime = nil
	defer func() { buildRuntime = old }()

	_, err := newRuntime(RuntimeOptions{})

	assert.EqualError(t, err, "runtime not configured")
}
