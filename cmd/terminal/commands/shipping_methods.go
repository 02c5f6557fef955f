package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// NewShippingMethodsCommand creates the shipping-methods command group.
func NewShippingMethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipping-methods",
		Aliases: []string{"shipping"},
		Short:   "Browse shipping methods",
		Long:    "List and inspect the hardware shipping methods of a country",
	}

	cmd.AddCommand(newShippingMethodsListCommand())
	cmd.AddCommand(newShippingMethodsGetCommand())

	return cmd
}

func newShippingMethodsListCommand() *cobra.Command {
	var (
		params terminal.ShippingMethodListParams
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipping methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.ShippingMethods().List(commandContext(cmd), &params)
			if err != nil {
				return fmt.Errorf("failed to list shipping methods: %w", err)
			}

			methods, err := filterItems(filter, list.Data)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), methods, func(table *tablewriter.Table) {
				renderShippingMethodsTable(table, methods)
			})
		},
	}

	cmd.Flags().StringVar(&params.Country, "country", "", "ISO country code (required)")
	cmd.Flags().StringVar(&params.Name, "name", "", "only methods with this name, e.g. standard or express")
	cmd.Flags().StringVar(&params.Provider, "provider", "", "only methods from this provider")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of methods to return")
	cmd.Flags().StringVar(&filter, "filter", "", "filter expression")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newShippingMethodsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SHIPPING_METHOD_ID",
		Short: "Get shipping method details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			method, err := client.ShippingMethods().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get shipping method: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), method, func(table *tablewriter.Table) {
				renderShippingMethodsTable(table, []terminal.ShippingMethod{*method})
			})
		},
	}
}

func renderShippingMethodsTable(table *tablewriter.Table, methods []terminal.ShippingMethod) {
	table.Header("ID", "Name", "Country", "Status", "Delivery Days")

	for _, method := range methods {
		days := "-"
		if method.EstimatedDeliveryDays > 0 {
			days = strconv.Itoa(method.EstimatedDeliveryDays)
		}

		_ = table.Append([]string{method.ID, method.Name, method.Country, string(method.Status), days})
	}
}
