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

// NewConfigureCommand creates the configure command
func NewConfigureCommand(container *config.Container) *cobra.Command {
	var (
		caller         string
		height         int64
		ticketPrice    int64
		oracleRef      string
		closeOffset    uint64
		deadlineOffset uint64
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Set the game configuration",
		Long: `Sets the ticket price, randomness source reference, and the round window
offsets. The first caller to configure becomes the operator; afterwards only
the operator may reconfigure, and only while no round is active. A claim
deadline shorter than the sale window is clamped up to the sale close.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			cfg := entities.GameConfig{
				TicketPrice:         ticketPrice,
				OracleRef:           oracleRef,
				SaleCloseOffset:     closeOffset,
				ClaimDeadlineOffset: deadlineOffset,
			}

			if err := container.Engine.Configure(call, cfg); err != nil {
				return callFailure(errors.OpConfigure, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			applied := container.Engine.Config()
			fmt.Printf("Configuration applied\n")
			fmt.Printf("  Operator: %s\n", container.Engine.Operator().Hex())
			fmt.Printf("  Ticket price: %d\n", applied.TicketPrice)
			fmt.Printf("  Sale close offset: %d blocks\n", applied.SaleCloseOffset)
			fmt.Printf("  Claim deadline offset: %d blocks\n", applied.ClaimDeadlineOffset)
			if applied.OracleRef != "" && applied.OracleRef != "none" {
				fmt.Printf("  Randomness source: %s (takes effect on next start)\n", applied.OracleRef)
			} else {
				fmt.Printf("  Randomness source: none\n")
			}
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "calling address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")
	cmd.Flags().Int64Var(&ticketPrice, "price", 0, "minimum payment per ticket")
	cmd.Flags().StringVar(&oracleRef, "oracle", "", "randomness source reference (none, blockhash, fixed:n,n,n,n,n,n)")
	cmd.Flags().Uint64Var(&closeOffset, "close-offset", 0, "blocks after round start until sales close")
	cmd.Flags().Uint64Var(&deadlineOffset, "deadline-offset", 0, "blocks after round start until claims close")

	return cmd
}
