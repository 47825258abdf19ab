package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockr/stockr/internal/mock"
	"github.com/stockr/stockr/internal/telemetry"
)

type mockOpts struct {
	addr    string
	seed    bool
	rps     float64
	burst   int
	latency time.Duration
}

func mockCmd() *cobra.Command {
	var o mockOpts
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run an in-memory inventory backend",
		Long:  `mock serves the inventory REST api from memory so the dashboard can run without a real backend. Prometheus metrics are served on /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMock(cmd.Context(), o)
		},
	}
	cmd.Flags().StringVar(&o.addr, "addr", ":5000", "Listen address")
	cmd.Flags().BoolVar(&o.seed, "seed", true, "Load sample data")
	cmd.Flags().Float64Var(&o.rps, "rps", 0, "Requests per second per client, 0 disables limiting")
	cmd.Flags().IntVar(&o.burst, "burst", 10, "Rate limiter burst")
	cmd.Flags().DurationVar(&o.latency, "latency", 0, "Delay added to every response")

	return cmd
}

func runMock(ctx context.Context, o mockOpts) error {
	level := ""
	if stockrFlags.LogLevel != nil {
		level = *stockrFlags.LogLevel
	}
	file := ""
	if stockrFlags.LogFile != nil {
		file = *stockrFlags.LogFile
	}
	closer, err := telemetry.InitLogger(level, file, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := mock.NewStore()
	if o.seed {
		if err := mock.Seed(store); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}
	srv := mock.NewServer(store, mock.Options{
		RPS:     o.rps,
		Burst:   o.burst,
		Latency: o.latency,
		Logger:  slog.Default(),
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, o.addr)
}
