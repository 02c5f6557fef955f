package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// NewSKUsCommand creates the skus command group.
func NewSKUsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skus",
		Aliases: []string{"sku"},
		Short:   "Browse hardware SKUs",
		Long:    "List and inspect the purchasable hardware SKUs of a country",
	}

	cmd.AddCommand(newSKUsListCommand())
	cmd.AddCommand(newSKUsGetCommand())

	return cmd
}

func newSKUsListCommand() *cobra.Command {
	var (
		params terminal.HardwareSKUListParams
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hardware SKUs",
		Long:  "List the hardware SKUs available in a country",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.HardwareSKUs().List(commandContext(cmd), &params)
			if err != nil {
				return fmt.Errorf("failed to list hardware SKUs: %w", err)
			}

			skus, err := filterItems(filter, list.Data)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), skus, func(table *tablewriter.Table) {
				renderSKUsTable(table, skus)
			})
		},
	}

	cmd.Flags().StringVar(&params.Country, "country", "", "ISO country code (required)")
	cmd.Flags().StringVar(&params.Product, "product", "", "only SKUs of this hardware product")
	cmd.Flags().StringVar(&params.Provider, "provider", "", "only SKUs from this provider")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of SKUs to return")
	cmd.Flags().StringVar(&filter, "filter", "", `filter expression, e.g. 'status == "available"'`)
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newSKUsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SKU_ID",
		Short: "Get hardware SKU details",
		Long:  "Display detailed information about a specific hardware SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			sku, err := client.HardwareSKUs().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get hardware SKU: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), sku, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append([]string{"ID", sku.ID})
				_ = table.Append([]string{"Product", sku.Product})
				_ = table.Append([]string{"Country", sku.Country})
				_ = table.Append([]string{"Price", formatAmount(sku.Amount, sku.Currency)})
				_ = table.Append([]string{"Status", string(sku.Status)})
				_ = table.Append([]string{"Orderable", strconv.Itoa(sku.Orderable)})
				_ = table.Append([]string{"Provider", formatOptional(sku.Provider)})
			})
		},
	}
}

func renderSKUsTable(table *tablewriter.Table, skus []terminal.HardwareSKU) {
	table.Header("ID", "Product", "Country", "Price", "Status", "Orderable")

	for _, sku := range skus {
		_ = table.Append([]string{
			sku.ID,
			sku.Product,
			sku.Country,
			formatAmount(sku.Amount, sku.Currency),
			string(sku.Status),
			strconv.Itoa(sku.Orderable),
		})
	}
}
