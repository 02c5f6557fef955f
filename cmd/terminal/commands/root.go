package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

// NewRootCommand creates the terminal command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "terminal",
		Short: "Terminal hardware ordering CLI",
		Long: `A command-line interface for ordering Terminal card-reader hardware.

Browse SKUs, products and shipping methods, preview and place orders, and
advance sandbox orders through their lifecycle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.terminal/config.yml)")
	flags.StringP("api-key", "k", "", "secret API key")
	flags.String("base-url", "", "API base URL (default "+constants.DefaultBaseURL+")")
	flags.String("api-version", "", "API version header")
	flags.StringP("output", "o", constants.OutputFormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log requests and responses")
	flags.String("log-format", LogFormatConsole, "log format (console, json)")
	flags.String("notify-nats", "", "NATS URL to publish order changes to")
	flags.String("notify-subject", constants.DefaultNotifySubject, "NATS subject prefix for order changes")

	bindings := map[string]string{
		"config":         "config",
		"api_key":        "api-key",
		"base_url":       "base-url",
		"api_version":    "api-version",
		"output":         "output",
		"verbose":        "verbose",
		"log_format":     "log-format",
		"notify_nats":    "notify-nats",
		"notify_subject": "notify-subject",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewSKUsCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewShippingMethodsCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewTestHelpersCommand())

	return rootCmd
}

// initConfig reads the config file and environment. TERMINAL_* variables
// override the file; STRIPE_API_KEY is accepted for the key as well.
func initConfig() error {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".terminal"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TERMINAL")
	viper.AutomaticEnv()
	_ = viper.BindEnv("api_key", "TERMINAL_API_KEY", "STRIPE_API_KEY")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}
