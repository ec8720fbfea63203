package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cuemby/cookshow/pkg/health"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether a cookshow server is healthy and ready",
	Long: `Probe /health and /ready on a running server.

With --wait the command polls /ready until the server reports ready or the
timeout expires, which makes it usable as a startup gate in scripts.

Examples:
  cookshow status
  cookshow status --api cookshow.internal:9090 --wait --timeout 1m`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().String("api", "localhost:8080", "Server address (API or metrics listener)")
	statusCmd.Flags().Bool("wait", false, "Poll until the server is ready")
	statusCmd.Flags().Duration("timeout", 30*time.Second, "How long to wait with --wait")
	statusCmd.Flags().Duration("interval", health.DefaultConfig().Interval, "Poll interval with --wait")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("api")
	wait, _ := cmd.Flags().GetBool("wait")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	interval, _ := cmd.Flags().GetDuration("interval")
	out := cmd.OutOrStdout()

	ready := health.Endpoint(addr, "/ready")

	if wait {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg := health.DefaultConfig()
		cfg.Interval = interval
		status, err := health.Wait(ctx, ready, cfg)
		if err != nil {
			return fmt.Errorf("server not ready after %s: %s", timeout, status.LastResult.Message)
		}
		fmt.Fprintf(out, "✓ Ready (%s)\n", status.LastResult.Duration)
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), health.DefaultConfig().Timeout)
	defer cancel()

	healthResult := health.Endpoint(addr, "/health").Check(ctx)
	readyResult := ready.Check(ctx)

	fmt.Fprintf(out, "Health: %s\n", describe(healthResult))
	fmt.Fprintf(out, "Ready:  %s\n", describe(readyResult))

	if !healthResult.Healthy || !readyResult.Healthy {
		return fmt.Errorf("server at %s is not ready", addr)
	}
	return nil
}

func describe(r health.Result) string {
	state := r.Status
	if state == "" {
		state = "unknown"
	}
	if r.Healthy {
		return state
	}
	return fmt.Sprintf("%s (%s)", state, r.Message)
}
