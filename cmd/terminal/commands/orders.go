package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/terminal-hardware/internal/notify"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage hardware orders",
		Long:    "Preview, create, inspect and cancel Terminal hardware orders",
	}

	cmd.AddCommand(newOrdersCreateCommand())
	cmd.AddCommand(newOrdersPreviewCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersCancelCommand())

	return cmd
}

// orderFlags holds the flags shared by create and preview.
type orderFlags struct {
	items          []string
	shippingMethod string
	paymentType    string
	poNumber       string
	metadata       map[string]string
	shipping       terminal.ShippingDetails
	address        terminal.Address
}

func (f *orderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.items, "item", nil, "order line as <sku>:<quantity> (repeatable)")
	cmd.Flags().StringVar(&f.shippingMethod, "shipping-method", "", "shipping method ID")
	cmd.Flags().StringVar(&f.paymentType, "payment-type", terminal.PaymentTypeMonthlyInvoice, "payment type")
	cmd.Flags().StringVar(&f.poNumber, "po-number", "", "purchase order number")
	cmd.Flags().StringToStringVar(&f.metadata, "metadata", nil, "metadata as key=value pairs")
	cmd.Flags().StringVar(&f.shipping.Name, "name", "", "recipient name")
	cmd.Flags().StringVar(&f.shipping.Email, "email", "", "recipient email")
	cmd.Flags().StringVar(&f.shipping.Phone, "phone", "", "recipient phone")
	cmd.Flags().StringVar(&f.shipping.Company, "company", "", "recipient company")
	cmd.Flags().StringVar(&f.address.Line1, "line1", "", "address line 1")
	cmd.Flags().StringVar(&f.address.Line2, "line2", "", "address line 2")
	cmd.Flags().StringVar(&f.address.City, "city", "", "city")
	cmd.Flags().StringVar(&f.address.State, "state", "", "state or province")
	cmd.Flags().StringVar(&f.address.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&f.address.Country, "country", "", "ISO country code")

	for _, name := range []string{"item", "shipping-method"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (f *orderFlags) params() (*terminal.HardwareOrderCreateParams, error) {
	items, err := parseItems(f.items)
	if err != nil {
		return nil, err
	}

	shipping := f.shipping
	address := f.address
	shipping.Address = &address

	opts := []terminal.HardwareOrderOption{
		terminal.WithPaymentType(f.paymentType),
		terminal.WithPONumber(f.poNumber),
	}

	for key, value := range f.metadata {
		opts = append(opts, terminal.WithMetadata(key, value))
	}

	params, err := terminal.NewHardwareOrderCreateParams(f.shippingMethod, &shipping, items, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	return params, nil
}

func newOrdersCreateCommand() *cobra.Command {
	flags := &orderFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hardware order",
		Long:  "Place a hardware order. Use 'orders preview' with the same flags to check totals first.",
		Example: `  terminal orders create --item thsku_123:2 --shipping-method thsm_123 \
    --name "Jenny Rosen" --email jenny@example.com --phone +15555550123 \
    --line1 "1 Main St" --postal-code 94107 --country US`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params()
			if err != nil {
				return err
			}

			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			order, err := client.HardwareOrders().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create hardware order: %w", err)
			}

			announceOrder(ctx, notify.EventCreated, order)

			return writeOrder(cmd, order)
		},
	}

	flags.register(cmd)

	return cmd
}

func newOrdersPreviewCommand() *cobra.Command {
	flags := &orderFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a hardware order",
		Long:  "Compute amount, tax and total of an order without placing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params()
			if err != nil {
				return err
			}

			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.HardwareOrders().Preview(commandContext(cmd), params)
			if err != nil {
				return fmt.Errorf("failed to preview hardware order: %w", err)
			}

			return writeOrder(cmd, order)
		},
	}

	flags.register(cmd)

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get hardware order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.HardwareOrders().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get hardware order: %w", err)
			}

			return writeOrder(cmd, order)
		},
	}
}

func newOrdersListCommand() *cobra.Command {
	var (
		params terminal.HardwareOrderListParams
		filter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hardware orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.HardwareOrders().List(commandContext(cmd), &params)
			if err != nil {
				return fmt.Errorf("failed to list hardware orders: %w", err)
			}

			orders, err := filterItems(filter, list.Data)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat(), orders, func(table *tablewriter.Table) {
				table.Header("ID", "Status", "Total", "Items", "Created")

				for _, order := range orders {
					_ = table.Append([]string{
						order.ID,
						string(order.Status),
						formatAmount(order.Total(), order.Currency),
						strconv.Itoa(len(order.HardwareOrderItems)),
						formatTimestamp(order.Created),
					})
				}
			})
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of orders to return")
	cmd.Flags().StringVar(&filter, "filter", "", `filter expression, e.g. 'status in ["pending", "ready_to_ship"]'`)

	return cmd
}

func newOrdersCancelCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel a hardware order",
		Long:  "Cancel a hardware order that has not shipped yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID := args[0]

			if !force {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really cancel order '%s'? (y/N): ", orderID)

				var response string

				_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
				if !strings.EqualFold(response, "y") {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")

					return nil
				}
			}

			client, _, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			order, err := client.HardwareOrders().Cancel(ctx, orderID)
			if err != nil {
				return fmt.Errorf("failed to cancel hardware order: %w", err)
			}

			announceOrder(ctx, notify.EventCanceled, order)

			return writeOrder(cmd, order)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not ask for confirmation")

	return cmd
}

// writeOrder renders a single order.
func writeOrder(cmd *cobra.Command, order *terminal.HardwareOrder) error {
	return writeOutput(cmd.OutOrStdout(), outputFormat(), order, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append([]string{"ID", formatOptional(order.ID)})
		_ = table.Append([]string{"Status", formatOptional(string(order.Status))})
		_ = table.Append([]string{"Amount", formatAmount(order.Amount, order.Currency)})
		_ = table.Append([]string{"Tax", formatAmount(order.Tax, order.Currency)})
		_ = table.Append([]string{"Total", formatAmount(order.Total(), order.Currency)})
		_ = table.Append([]string{"Payment Type", formatOptional(order.PaymentType)})
		_ = table.Append([]string{"Shipping Method", formatOptional(order.ShippingMethod.ID())})
		_ = table.Append([]string{"PO Number", formatOptional(order.PONumber)})
		_ = table.Append([]string{"Live Mode", formatBool(order.Livemode)})
		_ = table.Append([]string{"Created", formatTimestamp(order.Created)})

		for i, item := range order.HardwareOrderItems {
			_ = table.Append([]string{
				fmt.Sprintf("Item %d", i+1),
				fmt.Sprintf("%s x%d", item.TerminalHardwareSKU.ID(), item.Quantity),
			})
		}

		for _, tracking := range order.ShipmentTracking {
			_ = table.Append([]string{"Tracking", tracking.Carrier + " " + tracking.TrackingNumber})
		}
	})
}
