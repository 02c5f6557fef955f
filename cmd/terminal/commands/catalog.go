package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// Catalog is everything needed to place an order in one country.
type Catalog struct {
	Country         string                     `json:"country"          yaml:"country"`
	SKUs            []terminal.HardwareSKU     `json:"skus"             yaml:"skus"`
	Products        []terminal.HardwareProduct `json:"products"         yaml:"products"`
	ShippingMethods []terminal.ShippingMethod  `json:"shipping_methods" yaml:"shipping_methods"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the orderable catalog of a country",
		Long:  "Fetch SKUs, products and shipping methods of a country concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			catalog, err := fetchCatalog(commandContext(cmd), client, country)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), catalog, func(table *tablewriter.Table) {
				renderSKUsTable(table, catalog.SKUs)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO country code (required)")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

// fetchCatalog loads the three catalog resources in parallel. The first
// failure cancels the remaining requests.
func fetchCatalog(ctx context.Context, client terminal.Client, country string) (*Catalog, error) {
	catalog := &Catalog{Country: country}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	group.Go(func() error {
		list, err := client.HardwareSKUs().List(groupCtx, &terminal.HardwareSKUListParams{Country: country})
		if err != nil {
			return fmt.Errorf("failed to list hardware SKUs: %w", err)
		}

		catalog.SKUs = list.Data

		return nil
	})

	group.Go(func() error {
		list, err := client.HardwareProducts().List(groupCtx, nil)
		if err != nil {
			return fmt.Errorf("failed to list hardware products: %w", err)
		}

		catalog.Products = list.Data

		return nil
	})

	group.Go(func() error {
		list, err := client.ShippingMethods().List(groupCtx, &terminal.ShippingMethodListParams{Country: country})
		if err != nil {
			return fmt.Errorf("failed to list shipping methods: %w", err)
		}

		catalog.ShippingMethods = list.Data

		return nil
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return catalog, nil
}
