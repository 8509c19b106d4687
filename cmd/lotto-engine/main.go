package main

import (
	"os"

	"github.com/spf13/cobra"

	"lotto-engine/cmd/lotto-engine/commands"
	"lotto-engine/infrastructure/config"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "lotto-engine",
		Short: "Deterministic lottery settlement engine",
		Long: `A block-height driven lottery settlement engine. Rounds, tickets, draws,
and claims are recorded against a persistent ledger; window transitions are
observed from the chain height, never scheduled.`,
	}

	// Global flags
	var configPath string
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		rootCmd.PrintErrf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Create dependency container
	container, err := config.NewContainer(cfg)
	if err != nil {
		rootCmd.PrintErrf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	// Add commands
	rootCmd.AddCommand(
		commands.NewConfigureCommand(container),
		commands.NewPayoutsCommand(container),
		commands.NewRoundCommand(container),
		commands.NewBuyCommand(container),
		commands.NewTicketCommand(container),
		commands.NewDrawCommand(container),
		commands.NewClaimCommand(container),
		commands.NewTreasuryCommand(container),
		commands.NewWatchCommand(container),
		commands.NewReportCommand(container),
		commands.NewVersionCommand(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
