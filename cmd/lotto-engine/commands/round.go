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

// NewRoundCommand creates the round command group
func NewRoundCommand(container *config.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Manage lottery rounds",
	}

	cmd.AddCommand(
		newRoundStartCommand(container),
		newRoundStatusCommand(container),
		newRoundListCommand(container),
	)

	return cmd
}

// newRoundStartCommand creates the round start subcommand
func newRoundStartCommand(container *config.Container) *cobra.Command {
	var (
		caller string
		height int64
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new round",
		Long: `Starts a new round at the current height. Any caller may start a round
once the previous round has passed its claim deadline. The sale and claim
windows are derived from the configured offsets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			call, err := resolveCall(ctx, container, caller, height, 0)
			if err != nil {
				return err
			}

			round, err := container.Engine.StartRound(call)
			if err != nil {
				return callFailure(errors.OpStartRound, err)
			}

			if err := inTransaction(container, func(uow interfaces.UnitOfWork) error {
				if err := uow.Rounds().Save(ctx, &round); err != nil {
					return err
				}
				return uow.State().Save(ctx, container.Engine.State())
			}); err != nil {
				return err
			}

			container.Metrics.RecordRoundStarted(round.ID)

			fmt.Printf("Round %d started\n", round.ID)
			fmt.Printf("  Start height: %d\n", round.StartHeight)
			fmt.Printf("  Sales close: %d\n", round.CloseHeight)
			fmt.Printf("  Claim deadline: %d\n", round.DeadlineHeight)
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&caller, "caller", "", "calling address (hex)")
	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}

// newRoundStatusCommand creates the round status subcommand
func newRoundStatusCommand(container *config.Container) *cobra.Command {
	var height int64

	cmd := &cobra.Command{
		Use:   "status [round_id]",
		Short: "Show a round's window state",
		Long: `Shows the lifecycle state of a round at the current height. Without an
argument the latest round is shown. The state is computed from the stored
window heights, so the same round can report differently as the chain
advances.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var round entities.Round
			if len(args) > 0 {
				id, err := parseUint64(args[0])
				if err != nil {
					return fmt.Errorf("invalid round id: %w", err)
				}
				round, err = container.Engine.Round(id)
				if err != nil {
					return fmt.Errorf("round %d: %w", id, err)
				}
			} else {
				var ok bool
				round, ok = container.Engine.CurrentRound()
				if !ok {
					return fmt.Errorf("no round started yet")
				}
			}

			h, err := resolveHeight(ctx, container, height)
			if err != nil {
				return err
			}

			fmt.Printf("Round %d at height %d: %s\n", round.ID, h, round.Status(h))
			fmt.Printf("  Start height: %d\n", round.StartHeight)
			fmt.Printf("  Sales close: %d\n", round.CloseHeight)
			fmt.Printf("  Claim deadline: %d\n", round.DeadlineHeight)
			fmt.Printf("  Tickets sold: %d\n", round.TicketCount)
			fmt.Printf("  Revenue: %d\n", round.Revenue)
			if round.Drawn {
				fmt.Printf("  Winning numbers: %s\n", round.WinningNumbers.String())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}

// newRoundListCommand creates the round list subcommand
func newRoundListCommand(container *config.Container) *cobra.Command {
	var height int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rounds := container.Engine.Rounds()
			if len(rounds) == 0 {
				fmt.Println("No rounds recorded")
				return nil
			}

			h, err := resolveHeight(ctx, container, height)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tStatus\tStart\tClose\tDeadline\tTickets\tRevenue\tWinning Numbers")
			fmt.Fprintln(w, "--\t------\t-----\t-----\t--------\t-------\t-------\t---------------")
			for _, r := range rounds {
				numbers := "-"
				if r.Drawn {
					numbers = r.WinningNumbers.String()
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
					r.ID, r.Status(h), r.StartHeight, r.CloseHeight,
					r.DeadlineHeight, r.TicketCount, r.Revenue, numbers)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}
