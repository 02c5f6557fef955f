package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/terminal-hardware/cmd/terminal/commands"
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

// executeRoot runs the CLI with args against an empty config file and
// returns its standard output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yml")}, args...))

	err := root.Execute()

	return out.String(), err
}
