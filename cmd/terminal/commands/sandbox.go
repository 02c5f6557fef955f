package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/internal/notify"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// Sandbox transitions, named after their subcommands.
const (
	transitionMarkReadyToShip   = "mark-ready-to-ship"
	transitionShip              = "ship"
	transitionDeliver           = "deliver"
	transitionMarkUndeliverable = "mark-undeliverable"
)

// NewTestHelpersCommand creates the test-helpers command group.
func NewTestHelpersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test-helpers",
		Aliases: []string{"sandbox"},
		Short:   "Advance sandbox hardware orders",
		Long:    "Move test mode hardware orders through their lifecycle. Requires a sk_test_ key.",
	}

	cmd.AddCommand(newTransitionCommand(transitionMarkReadyToShip, "Mark an order ready to ship"))
	cmd.AddCommand(newShipCommand())
	cmd.AddCommand(newTransitionCommand(transitionDeliver, "Mark an order delivered"))
	cmd.AddCommand(newTransitionCommand(transitionMarkUndeliverable, "Mark an order undeliverable"))

	return cmd
}

func newTransitionCommand(transition, short string) *cobra.Command {
	return &cobra.Command{
		Use:   transition + " ORDER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransitionCommand(cmd, transition, args[0], nil)
		},
	}
}

func newShipCommand() *cobra.Command {
	params := &terminal.ShipParams{}

	cmd := &cobra.Command{
		Use:   transitionShip + " ORDER_ID",
		Short: "Mark an order shipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransitionCommand(cmd, transitionShip, args[0], params)
		},
	}

	cmd.Flags().StringVar(&params.Carrier, "carrier", "", "shipping carrier")
	cmd.Flags().StringVar(&params.TrackingNumber, "tracking-number", "", "carrier tracking number")

	return cmd
}

func runTransitionCommand(cmd *cobra.Command, transition, orderID string, params *terminal.ShipParams) error {
	client, config, err := CreateClient()
	if err != nil {
		return err
	}

	if !config.IsTestMode() {
		return constants.ErrTestKeyRequired
	}

	ctx := commandContext(cmd)

	order, err := applyTransition(ctx, client.TestHelpers(), transition, orderID, params)
	if err != nil {
		return err
	}

	announceOrder(ctx, notify.EventTransition, order)

	return writeOrder(cmd, order)
}

// applyTransition calls the sandbox endpoint matching transition.
func applyTransition(
	ctx context.Context,
	helpers terminal.TestHelpersClient,
	transition, orderID string,
	params *terminal.ShipParams,
) (*terminal.HardwareOrder, error) {
	var (
		order *terminal.HardwareOrder
		err   error
	)

	switch transition {
	case transitionMarkReadyToShip:
		order, err = helpers.MarkReadyToShip(ctx, orderID)
	case transitionShip:
		order, err = helpers.Ship(ctx, orderID, params)
	case transitionDeliver:
		order, err = helpers.Deliver(ctx, orderID)
	case transitionMarkUndeliverable:
		order, err = helpers.MarkUndeliverable(ctx, orderID)
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownTransition, transition)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to %s order: %w", transition, err)
	}

	return order, nil
}
