package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"icon-active-addresses/internal/config"
	"icon-active-addresses/internal/data-layer/icon"
	"icon-active-addresses/internal/service"
	"icon-active-addresses/internal/service/output"
)

type options struct {
	configPath string
	start      int64
	end        int64
	dryRun     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("active-addresses: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "active-addresses",
		Short:         "Collect the unique ICON sender addresses active in a time range",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("start") {
				cfg.Range.StartTimestamp = opts.start
			}
			if cmd.Flags().Changed("end") {
				cfg.Range.EndTimestamp = opts.end
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.dryRun)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "cmd/config.yaml", "path to config file")
	cmd.Flags().Int64Var(&opts.start, "start", 0, "start of the range as a Unix timestamp (overrides config)")
	cmd.Flags().Int64Var(&opts.end, "end", 0, "end of the range as a Unix timestamp (overrides config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print a summary instead of writing the output file")
	return cmd
}

func run(ctx context.Context, cfg *config.AppConfig, dryRun bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics(reg)
	if cfg.Metrics.Listen != "" {
		ln, err := net.Listen("tcp", cfg.Metrics.Listen)
		if err != nil {
			return fmt.Errorf("metrics listener: %w", err)
		}
		srv := serveMetrics(ln, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			stopMetrics(shutdownCtx, srv, log.Default())
		}()
	}

	var writer output.Writer = &output.FileWriter{
		Dir:   cfg.Output.Dir,
		Range: cfg.TimeRange(),
		Style: cfg.Output.NameStyle,
	}
	if dryRun {
		writer = &output.MockWriter{}
	}

	fetcher := icon.NewTrackerFetcher(cfg.Tracker.Endpoint, cfg.Tracker.RequestTimeout)
	harvester := service.NewHarvesterFromConfig(cfg, fetcher, writer, metrics, log.Default())
	_, _, err := harvester.Run(ctx)
	return err
}

func serveMetrics(ln net.Listener, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux}
	go func() {
		log.Printf("[Metrics] serving on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Metrics] server stopped: %v", err)
		}
	}()
	return srv
}

func stopMetrics(ctx context.Context, srv *http.Server, l *log.Logger) {
	if err := srv.Shutdown(ctx); err != nil {
		l.Printf("[Metrics] shutdown: %v", err)
	}
}
