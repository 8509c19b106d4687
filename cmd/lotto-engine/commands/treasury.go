package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewTreasuryCommand creates the treasury command group
func NewTreasuryCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Inspect and withdraw the treasury balance",
	}

	cmd.AddCommand(
		newTreasuryBalanceCommand(container),
		newTreasuryWithdrawCommand(container),
	)

	return cmd
}

// newTreasuryBalanceCommand creates the treasury balance subcommand
func newTreasuryBalanceCommand(container *config.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the treasury balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Treasury balance: %d\n", container.Engine.Balance())
			return nil
		},
	}
}

// newTreasuryWithdrawCommand creates the treasury withdraw subcommand
func newTreasuryWithdrawCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
	)

	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw from the treasury",
		Long: `Withdraws the given amount to the operator. The treasury is locked while
the latest round's claim window is open; withdrawal opens at the claim
deadline. Unclaimed winnings left past the deadline stay in the treasury.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseInt64(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			ctx := context.Background()
			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			withdrawn, err := container.Engine.Withdraw(call, amount)
			if err != nil {
				return callFailure(errors.OpWithdraw, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			balance := container.Engine.Balance()
			container.Metrics.SetTreasuryBalance(balance)

			fmt.Println(withdrawSummary(withdrawn, balance))
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "operator address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}

// withdrawSummary renders the withdrawal result. Withdraw returns the amount
// debited, not the remaining balance; the balance is read back separately.
func withdrawSummary(withdrawn, balance int64) string {
	return fmt.Sprintf("Withdrew %d; treasury balance: %d", withdrawn, balance)
}
