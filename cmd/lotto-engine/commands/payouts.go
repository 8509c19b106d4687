package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewPayoutsCommand creates the payouts command
func NewPayoutsCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
	)

	cmd := &cobra.Command{
		Use:   "payouts [table]",
		Short: "Show or set the per-tier payout table",
		Long: `Without arguments, prints the current payout table. With a table argument
(twelve comma-separated pool amounts indexed by tier), replaces it. Only the
operator may set payouts, and only while no round is active. The table
persists across rounds until changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return displayPayoutTable(container.Engine.PayoutTable())
			}

			table, err := entities.ParsePayoutTable(args[0])
			if err != nil {
				return fmt.Errorf("invalid payout table: %w", err)
			}

			ctx := context.Background()
			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			if err := container.Engine.SetPayouts(call, table); err != nil {
				return callFailure(errors.OpSetPayouts, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			fmt.Printf("Payout table updated\n")
			return displayPayoutTable(table)
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "calling address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}

// displayPayoutTable prints the payout table with tier composition.
func displayPayoutTable(table entities.PayoutTable) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Tier\tMain Matches\tBonus Match\tPool")
	fmt.Fprintln(w, "----\t------------\t-----------\t----")
	for tier, pool := range table {
		bonus := "yes"
		if tier%2 == 1 {
			bonus = "no"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", tier, tier/2, bonus, pool)
	}
	return w.Flush()
}
