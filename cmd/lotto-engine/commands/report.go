package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewReportCommand creates the report command
func NewReportCommand(container *config.Container) *cobra.Command {
	var (
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "report [round_id]",
		Short: "Generate a round settlement report",
		Long: `Summarizes a round's settlement: per-tier pools, winner counts, shares,
claimed and paid amounts, and the outstanding unclaimed liability. Without
an argument the latest round is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var roundID uint64
			if len(args) > 0 {
				id, err := parseUint64(args[0])
				if err != nil {
					return fmt.Errorf("invalid round id: %w", err)
				}
				roundID = id
			}

			var out io.Writer = os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			ctx := context.Background()
			err := container.SettlementReportUseCase.Execute(ctx, interfaces.SettlementReportParams{
				RoundID:      roundID,
				OutputWriter: out,
				OutputFormat: interfaces.OutputFormat(format),
			})
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}

			if outputPath != "" {
				fmt.Printf("Report saved to %s\n", outputPath)
			}
			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&format, "format", "f", string(interfaces.OutputFormatJSON), "output format (json, yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}
