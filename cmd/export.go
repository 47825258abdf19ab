package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockr/stockr/internal/chart"
	"github.com/stockr/stockr/internal/telemetry"
)

const exportTimeout = time.Minute

type exportOpts struct {
	out   string
	title string
	dark  bool
}

func exportCmd() *cobra.Command {
	var o exportOpts
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the analytics dashboard as HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, o)
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "dashboard.html", "Output file, - for stdout")
	cmd.Flags().StringVar(&o.title, "title", "", "Page title")
	cmd.Flags().BoolVar(&o.dark, "dark", false, "Use the dark chart theme")

	return cmd
}

func runExport(cmd *cobra.Command, o exportOpts) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closer, err := telemetry.InitLogger(cfg.Stockr.Logger.Level, logFile(), false)
	if err != nil {
		return err
	}
	defer closer.Close()

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()
	snap := chart.Collect(ctx, factory)

	w := cmd.OutOrStdout()
	if o.out != "-" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := chart.WriteHTML(w, snap, chart.HTMLOptions{Title: o.title, Dark: o.dark}); err != nil {
		return err
	}
	for k, err := range snap.Errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", k, err)
	}
	if o.out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "dashboard written to %s\n", o.out)
	}

	return nil
}
