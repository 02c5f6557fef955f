package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

// Config represents the CLI configuration.
type Config struct {
	APIKey        string `json:"api_key,omitempty"        yaml:"api_key,omitempty"`
	BaseURL       string `json:"base_url,omitempty"       yaml:"base_url,omitempty"`
	APIVersion    string `json:"api_version,omitempty"    yaml:"api_version,omitempty"`
	Output        string `json:"output,omitempty"         yaml:"output,omitempty"`
	LogFormat     string `json:"log_format,omitempty"     yaml:"log_format,omitempty"`
	NotifyNATS    string `json:"notify_nats,omitempty"    yaml:"notify_nats,omitempty"`
	NotifySubject string `json:"notify_subject,omitempty" yaml:"notify_subject,omitempty"`
}

// settableKeys are the keys accepted by "config set".
var settableKeys = []string{"base_url", "api_version", "output", "log_format", "notify_nats", "notify_subject"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and update the terminal CLI configuration stored in ~/.terminal/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the resolved CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskAPIKey(config.APIKey)

			return writeOutput(cmd.OutOrStdout(), outputFormat(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append([]string{"API Key", formatOptional(config.APIKey)})
				_ = table.Append([]string{"Base URL", formatOptional(config.BaseURL)})
				_ = table.Append([]string{"API Version", formatOptional(config.APIVersion)})
				_ = table.Append([]string{"Output", formatOptional(config.Output)})
				_ = table.Append([]string{"Log Format", formatOptional(config.LogFormat)})
				_ = table.Append([]string{"NATS URL", formatOptional(config.NotifyNATS)})
				_ = table.Append([]string{"NATS Subject", formatOptional(config.NotifySubject)})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(settableKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			persister := NewConfigPersister()

			err := persister.Set(args[0], args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the secret API key",
		Long:  "Store the secret API key in the config file. Without an argument the key is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string

			if len(args) == 1 {
				key = args[0]
			} else {
				read, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				key = read
			}

			err := NewConfigPersister().SetAPIKey(key)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key %s saved\n", maskAPIKey(strings.TrimSpace(key)))

			return nil
		},
	}
}

// readSecret prompts for the key, hiding input when stdin is a terminal.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "Secret key: ")

	file, ok := in.(*os.File)
	if ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}

		return string(secret), nil
	}

	var secret string

	_, err := fmt.Fscanln(in, &secret)
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	return secret, nil
}

// loadConfig resolves the configuration from flags, environment and file.
func loadConfig() *Config {
	return &Config{
		APIKey:        viper.GetString("api_key"),
		BaseURL:       viper.GetString("base_url"),
		APIVersion:    viper.GetString("api_version"),
		Output:        viper.GetString("output"),
		LogFormat:     viper.GetString("log_format"),
		NotifyNATS:    viper.GetString("notify_nats"),
		NotifySubject: viper.GetString("notify_subject"),
	}
}

// configFilePath returns the file the configuration is read from and written to.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = viper.GetString("config")
	}

	if configFile != "" {
		ext := strings.ToLower(filepath.Ext(configFile))
		if ext != ".yml" && ext != ".yaml" {
			return "", fmt.Errorf("%w: %s (expected .yml or .yaml)", constants.ErrInvalidFilePath, configFile)
		}

		return filepath.Clean(configFile), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".terminal", "config.yml"), nil
}
