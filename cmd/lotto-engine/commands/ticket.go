package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewTicketCommand creates the ticket command group
func NewTicketCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Inspect and transfer tickets",
	}

	cmd.AddCommand(
		newTicketShowCommand(container),
		newTicketTransferCommand(container),
	)

	return cmd
}

// newTicketShowCommand creates the ticket show subcommand
func newTicketShowCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [ticket_id]",
		Short: "Show a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUint64(args[0])
			if err != nil {
				return fmt.Errorf("invalid ticket id: %w", err)
			}

			ticket, err := container.Engine.Ticket(id)
			if err != nil {
				return fmt.Errorf("ticket %d: %w", id, err)
			}

			fmt.Printf("Ticket %d\n", ticket.ID)
			fmt.Printf("  Round: %d\n", ticket.RoundID)
			fmt.Printf("  Owner: %s\n", ticket.Owner.Hex())
			fmt.Printf("  Numbers: %s\n", ticket.Numbers.String())
			fmt.Printf("  Claimed: %t\n", ticket.Claimed)

			round, err := container.Engine.Round(ticket.RoundID)
			if err == nil && round.Drawn {
				tier := entities.TierIndex(ticket.Numbers, round.WinningNumbers)
				pool := container.Engine.PayoutTable()[tier]
				fmt.Printf("  Tier: %d (pool %d)\n", tier, pool)
			}
			return nil
		},
	}

	return cmd
}

// newTicketTransferCommand creates the ticket transfer subcommand
func newTicketTransferCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
	)

	cmd := &cobra.Command{
		Use:   "transfer [ticket_id] [new_owner]",
		Short: "Transfer a ticket to a new owner",
		Long: `Transfers ticket ownership. Only the current owner may transfer, at any
time; unclaimed winnings of a drawn round move with the ticket.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUint64(args[0])
			if err != nil {
				return fmt.Errorf("invalid ticket id: %w", err)
			}
			newOwner := entities.AddrFromHex(args[1])

			ctx := context.Background()
			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			if err := container.Engine.TransferTicket(call, id, newOwner); err != nil {
				return callFailure(errors.OpTransferTicket, err)
			}

			ticket, err := container.Engine.Ticket(id)
			if err != nil {
				return fmt.Errorf("failed to read ticket %d: %w", id, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				return uow.Tickets().Save(ctx, &ticket)
			}); err != nil {
				return err
			}

			fmt.Printf("Ticket %d transferred to %s\n", id, newOwner.Hex())
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "current owner address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}
