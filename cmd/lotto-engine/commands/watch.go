package commands

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"lotto-engine/domain/dto"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/config"
)

// NewWatchCommand creates the watch command
func NewWatchCommand(container *config.Container) *cobra.Command {
	var (
		interval time.Duration
		trigger  bool
		once     bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the active round's window state",
		Long: `Polls the chain height and reports the active round's window state on
every tick. With --trigger, fires the draw automatically as soon as the
round becomes draw-eligible. Serves Prometheus metrics when a metrics
address is configured. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ChainReader == nil {
				return fmt.Errorf("rpc_addr configuration required for watch command")
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if interval <= 0 {
				interval = container.Config.WatchInterval
			}

			if container.Config.MetricsAddr != "" {
				go serveMetrics(container, container.Config.MetricsAddr)
			}

			container.Logger.Info("Watching round windows",
				"interval", interval.String(),
				"trigger", trigger)

			observe(ctx, container, trigger)
			if once {
				return nil
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					container.Logger.Info("Watch stopped")
					return nil
				case <-ticker.C:
					observe(ctx, container, trigger)
				}
			}
		},
	}

	// Add flags
	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "polling interval (defaults to watch_interval)")
	cmd.Flags().BoolVar(&trigger, "trigger", false, "trigger the draw when eligible")
	cmd.Flags().BoolVar(&once, "once", false, "observe once and exit")

	return cmd
}

// observe performs one watch tick and records its outcome.
func observe(ctx context.Context, container *config.Container, trigger bool) {
	result, err := container.WatchRoundUseCase.Execute(ctx, interfaces.WatchRoundParams{
		TriggerDraw: trigger,
	})
	if err != nil {
		container.Logger.Error("Observation failed", "error", err)
		return
	}

	container.Metrics.RecordObservation(result.Height)
	if result.Draw != nil {
		container.Metrics.RecordDraw(result.Draw)
	}

	printObservation(result)
}

// printObservation prints one watch tick.
func printObservation(result *dto.WatchResult) {
	line := fmt.Sprintf("height %d  round %d  %s", result.Height, result.RoundID, result.Status)
	if result.DrawTriggered && result.Draw != nil {
		line += fmt.Sprintf("  drawn: %s", result.Draw.WinningNumbers.String())
	}
	fmt.Println(line)
}

// serveMetrics exposes the Prometheus endpoint.
func serveMetrics(container *config.Container, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	container.Logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		container.Logger.Error("Metrics server failed", "error", err)
	}
}
