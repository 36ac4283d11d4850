package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geokernel/kernel"
	"github.com/katalvlaran/geokernel/scenario"
)

func (a *app) runCmd() *cobra.Command {
	var watchMode bool
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a scenario script",
		Long: `Builds a construction from the script's nodes, executes its steps and
checks every expectation. With --watch the script is re-run whenever the file
changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := a.runScript(ctx, args[0], cmd.OutOrStdout())
			if !watchMode {
				return err
			}
			if err != nil {
				a.logger.Warn("scenario failed", zap.String("script", args[0]), zap.Error(err))
			}
			return watch(ctx, args[0], a.logger, func() error {
				return a.runScript(ctx, args[0], cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run the script when it changes")

	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <script>",
		Short: "Parse a scenario script without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes, %d steps\n", args[0], len(s.Nodes), len(s.Steps))
			return nil
		},
	}
}

// runScript executes one script with a fresh metrics registry and writes the
// gathered metrics to the configured textfile, also when the run failed.
func (a *app) runScript(ctx context.Context, path string, out io.Writer) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	kopts := []kernel.Option{kernel.WithConfig(a.cfg.KernelConfig())}
	if a.cfg.Metrics.Enabled {
		m, err := kernel.NewMetrics(a.cfg.Metrics.Namespace, reg)
		if err != nil {
			return err
		}
		kopts = append(kopts, kernel.WithMetrics(m))
	}
	rn := scenario.NewRunner(
		scenario.WithLogger(a.logger),
		scenario.WithKernelOptions(kopts...),
	)

	c, res, runErr := rn.Run(ctx, s)
	if a.cfg.Metrics.Enabled && a.cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, reg); err != nil {
			a.logger.Error("failed to write metrics", zap.String("path", a.cfg.Metrics.Textfile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "%s: %d steps passed, %d nodes\n", path, res.Steps, c.Len())

	return nil
}
