package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewClaimCommand creates the claim command
func NewClaimCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
	)

	cmd := &cobra.Command{
		Use:   "claim [ticket_id]",
		Short: "Claim a ticket's winnings",
		Long: `Settles a ticket against the drawn round. The payout is the ticket tier's
pool divided evenly among that tier's winners; a losing ticket settles for
zero. Claims are accepted only between the draw and the claim deadline, and
each ticket settles at most once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := parseUint64(args[0])
			if err != nil {
				return fmt.Errorf("invalid ticket id: %w", err)
			}

			ctx := context.Background()
			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			payout, err := container.Engine.ClaimWinnings(call, ticketID)
			if err != nil {
				return callFailure(errors.OpClaimWinnings, err)
			}

			ticket, err := container.Engine.Ticket(ticketID)
			if err != nil {
				return fmt.Errorf("failed to read ticket %d: %w", ticketID, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				if err := uow.Tickets().Save(ctx, &ticket); err != nil {
					return err
				}
				if err := uow.Payouts().Save(ctx, payout); err != nil {
					return err
				}
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			container.Metrics.RecordClaim(payout.Amount)
			container.Metrics.SetTreasuryBalance(container.Engine.Balance())

			if payout.Amount == 0 {
				fmt.Printf("Ticket %d settled: no winnings (tier %d)\n", ticketID, payout.Tier)
				return nil
			}
			fmt.Printf("Ticket %d settled: %d paid to %s (tier %d)\n",
				ticketID, payout.Amount, payout.Recipient.Hex(), payout.Tier)
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "ticket owner address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}
