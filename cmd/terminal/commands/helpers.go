package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminalclient"
)

const maskedKeyVisible = 4

// CreateClient builds a client from the resolved CLI configuration.
func CreateClient() (terminal.Client, *terminal.Config, error) {
	config := loadConfig()

	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return nil, nil, constants.ErrNoAPIKeyConfigured
	}

	logger := NewLogger(config.LogFormat, viper.GetBool("verbose"), os.Stderr)

	clientConfig := &terminal.Config{
		APIKey:     apiKey,
		APIVersion: config.APIVersion,
		BaseURL:    config.BaseURL,
		Debug:      viper.GetBool("verbose"),
		Logger:     terminal.NewZerologLogger(logger),
	}

	client, err := terminalclient.New(clientConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, clientConfig, nil
}

// maskAPIKey hides all but the mode prefix and the last characters of key.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}

	prefix := ""
	if idx := strings.LastIndex(key, "_"); idx >= 0 && idx < len(key)-1 {
		prefix = key[:idx+1]
	}

	rest := strings.TrimPrefix(key, prefix)
	if len(rest) <= maskedKeyVisible {
		return prefix + strings.Repeat("*", len(rest))
	}

	return prefix + strings.Repeat("*", len(rest)-maskedKeyVisible) + rest[len(rest)-maskedKeyVisible:]
}

// outputFormat returns the configured output format.
func outputFormat() string {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		return constants.OutputFormatTable
	}

	return format
}

// writeOutput renders value as JSON or YAML, or calls renderTable for table output.
func writeOutput(out io.Writer, format string, value interface{}, renderTable func(*tablewriter.Table)) error {
	switch format {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.OutputFormatYAML:
		encoder := yaml.NewEncoder(out)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	case constants.OutputFormatTable:
		table := tablewriter.NewWriter(out)
		renderTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

// parseItems parses "<sku>:<quantity>" arguments into order lines.
func parseItems(values []string) ([]terminal.HardwareOrderItem, error) {
	items := make([]terminal.HardwareOrderItem, 0, len(values))

	for _, value := range values {
		sku, quantity, found := strings.Cut(value, ":")
		if !found {
			sku, quantity = value, "1"
		}

		sku = strings.TrimSpace(sku)
		if sku == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidItemFormat, value)
		}

		count, err := strconv.Atoi(strings.TrimSpace(quantity))
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidItemFormat, value)
		}

		items = append(items, terminal.NewHardwareOrderItem(sku, count))
	}

	return items, nil
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func formatOptional(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

// commandContext returns the command's context, or Background when it has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// formatTimestamp renders a unix timestamp in UTC, or "-" when unset.
func formatTimestamp(unix int64) string {
	if unix == 0 {
		return "-"
	}

	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04:05")
}
