package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse hardware products",
		Long:    "List and inspect Terminal hardware products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		params terminal.HardwareProductListParams
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hardware products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.HardwareProducts().List(commandContext(cmd), &params)
			if err != nil {
				return fmt.Errorf("failed to list hardware products: %w", err)
			}

			products, err := filterItems(filter, list.Data)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), products, func(table *tablewriter.Table) {
				renderProductsTable(table, products)
			})
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of products to return")
	cmd.Flags().StringVar(&filter, "filter", "", "filter expression")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get hardware product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			product, err := client.HardwareProducts().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get hardware product: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), product, func(table *tablewriter.Table) {
				renderProductsTable(table, []terminal.HardwareProduct{*product})
			})
		},
	}
}

func renderProductsTable(table *tablewriter.Table, products []terminal.HardwareProduct) {
	table.Header("ID", "Name", "Status", "Unavailable After")

	for _, product := range products {
		_ = table.Append([]string{product.ID, product.Name, string(product.Status), formatTimestamp(product.UnavailableAfter)})
	}
}
