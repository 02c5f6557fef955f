package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the terminal CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Version: version, Commit: commit, Built: date}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), info, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append([]string{"Version", info.Version})
				_ = table.Append([]string{"Commit", info.Commit})
				_ = table.Append([]string{"Built", info.Built})
			})
		},
	}
}
