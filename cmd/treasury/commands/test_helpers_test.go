package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of the direct subcommands of cmd.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// resetViper isolates a test from global viper state and points the config
// file into a temporary directory.
func resetViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), ".treasury", "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

// loginTo configures credentials for a test server.
func loginTo(t *testing.T, server *httptest.Server, output string) {
	t.Helper()

	resetViper(t)
	viper.Set("base_url", server.URL)
	viper.Set("organization_id", "test-org")
	viper.Set("api_key", "test-key")
	viper.Set("output", output)
}

// runCommand executes cmd with args and returns its output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	return runCommandWithInput(t, cmd, "", args...)
}

// runCommandWithInput executes cmd with input on stdin.
func runCommandWithInput(t *testing.T, cmd *cobra.Command, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}
