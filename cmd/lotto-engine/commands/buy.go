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

// NewBuyCommand creates the buy command
func NewBuyCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
		value  int64
	)

	cmd := &cobra.Command{
		Use:   "buy [numbers]",
		Short: "Buy a ticket in the open round",
		Long: `Buys a ticket with the given numbers (five distinct mains and a bonus,
comma-separated). The attached value must cover the ticket price; any excess
is kept by the treasury. Sales close at the round's close height.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := entities.ParsePicks(args[0])
			if err != nil {
				return fmt.Errorf("invalid numbers: %w", err)
			}

			ctx := context.Background()

			if value < 0 {
				value = container.Engine.Config().TicketPrice
			}

			call, err := resolveCall(ctx, container, caller, height, value)
			if err != nil {
				return err
			}

			ticketID, err := container.Engine.BuyTicket(call, numbers)
			if err != nil {
				return callFailure(errors.OpBuyTicket, err)
			}

			ticket, err := container.Engine.Ticket(ticketID)
			if err != nil {
				return fmt.Errorf("failed to read ticket %d: %w", ticketID, err)
			}
			round, err := container.Engine.Round(ticket.RoundID)
			if err != nil {
				return fmt.Errorf("failed to read round %d: %w", ticket.RoundID, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				if err := uow.Tickets().Save(ctx, &ticket); err != nil {
					return err
				}
				if err := uow.Rounds().Save(ctx, &round); err != nil {
					return err
				}
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			container.Metrics.SetRoundRevenue(round.ID, round.Revenue)
			container.Metrics.SetTreasuryBalance(container.Engine.Balance())

			fmt.Printf("Ticket %d bought in round %d\n", ticketID, round.ID)
			fmt.Printf("  Owner: %s\n", ticket.Owner.Hex())
			fmt.Printf("  Numbers: %s\n", ticket.Numbers.String())
			fmt.Printf("  Paid: %d\n", value)
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "buying address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")
	cmd.Flags().Int64Var(&value, "value", -1, "attached payment (defaults to the ticket price)")

	return cmd
}
