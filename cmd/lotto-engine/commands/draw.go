package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewDrawCommand creates the draw command
func NewDrawCommand(container *config.Container) *cobra.Command {
	var height int64

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Trigger the draw for the active round",
		Long: `Draws the winning numbers for the active round once its sale window has
closed. The draw is permanent: winning numbers and per-tier winner counts
are fixed at this moment and every later claim settles against them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			params := interfaces.DrawRoundParams{}
			if height >= 0 {
				h := uint64(height)
				params.Height = &h
			}

			result, err := container.DrawRoundUseCase.Execute(ctx, params)
			if err != nil {
				container.Metrics.IncrementDrawErrors()
				return fmt.Errorf("draw failed: %w", err)
			}

			container.Metrics.RecordDraw(result)

			fmt.Printf("Round %d drawn at height %d\n", result.RoundID, result.Height)
			fmt.Printf("  Winning numbers: %s\n", result.WinningNumbers.String())
			fmt.Printf("  Tickets: %d\n", result.TicketCount)
			for tier, count := range result.WinnerCounts {
				if count > 0 {
					fmt.Printf("  Tier %d winners: %d\n", tier, count)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&height, "height", heightUnset, "block height override")

	return cmd
}
