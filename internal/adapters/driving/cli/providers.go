package cli

import (
	"errors"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List providers and their credential status",
	Long: `Lists the four sentiment providers in run order with the credentials
found in the environment and the --env-file. Secrets are masked.

No provider is contacted.`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(RuntimeOptions{
		EnvFile: envFile,
		Verbose: verbose,
		Out:     cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	if rt.Providers == nil {
		return errors.New("provider status service not configured")
	}

	cmd.Println("Providers")
	cmd.Println("=========")

	for _, p := range rt.Providers.List() {
		cmd.Println()
		cmd.Printf("[%s] %s\n", p.ID, p.Name)

		status := "configured"
		if !p.Configured {
			status = "not configured (skipped)"
		}
		cmd.Printf("  Status: %s\n", status)

		mode := "one request per sentence"
		if p.Batch {
			mode = "batch"
		}
		cmd.Printf("  Requests: %s\n", mode)

		keys := make([]string, 0, len(p.Credentials))
		for k := range p.Credentials {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %s: %s\n", k, displayCredential(k, p.Credentials[k]))
		}
	}
	return nil
}

// displayCredential masks secrets and marks unset values.
func displayCredential(name, value string) string {
	if value == "" {
		return "(not set)"
	}
	if isSecret(name) {
		return maskAPIKey(value)
	}
	return value
}

func isSecret(name string) bool {
	for _, marker := range []string{"KEY", "SECRET", "TOKEN"} {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// maskAPIKey shows only the first and last 4 characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
