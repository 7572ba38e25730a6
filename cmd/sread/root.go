package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/xiam/s-expr-reader/internal/config"
	"github.com/xiam/s-expr-reader/internal/logging"
	"github.com/xiam/s-expr-reader/internal/metrics"
	"github.com/xiam/s-expr-reader/parser"
)

// app holds what the subcommands share once the root command has loaded
// the configuration.
type app struct {
	configPath  string
	overrides   string
	debug       bool
	metricsAddr string

	cfg      config.Config
	log      logr.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}

	cmd := &cobra.Command{
		Use:   "sread",
		Short: "Read and print s-expressions",
		Long: `sread reads s-expressions and prints them back in canonical form.
Without a subcommand it starts an interactive session.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRepl,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	flags.StringVar(&a.overrides, "set", "", "Comma separated key=value settings overriding the configuration file")
	flags.BoolVar(&a.debug, "debug", false, "Log every expression read")
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "Address to serve prometheus metrics on")

	cmd.AddCommand(
		newReplCmd(a),
		newReadCmd(a),
		newTokensCmd(a),
	)
	return cmd
}

// setup loads the configuration, applies --set and explicit flags on top of
// it and builds the logger and metrics used by every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Apply(a.overrides); err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = a.metricsAddr
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	a.log = logging.WithSession(logger.WithName(cmd.Name()))

	a.registry = prometheus.NewRegistry()
	if a.metrics, err = metrics.New(a.registry); err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		a.serveMetrics(cmd.Context())
	}
	return nil
}

func (a *app) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              a.cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	go func() {
		a.log.Info("serving metrics", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(err, "metrics server stopped")
		}
	}()
}

func (a *app) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithLogger(a.log),
		parser.WithMaxDepth(a.cfg.MaxDepth),
		parser.WithObserver(a.metrics),
	}
}
