package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nsqtop/internal/app"
	"nsqtop/internal/shared/configs"
	"nsqtop/internal/stores"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "nsqtop",
		Short:         "A top-like monitoring tool for NSQ clusters",
		Long:          "Monitor an NSQ cluster in real time: nsqtop polls nsqlookupd for active nsqd nodes, aggregates per-channel queue stats across the cluster and renders a ranked terminal dashboard with message-rate and backlog trends.",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.Load(v)
			if err != nil {
				// Configuration errors are the only fatal ones; show usage.
				_ = cmd.Usage()
				return err
			}
			cmd.SilenceUsage = true

			application, err := app.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return application.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringP("lookupd-http-address", "l", "",
		"Comma-separated HTTP addresses of nsqlookupd instances (e.g. localhost:4161); http:// is assumed when no scheme is given. Can also be set with NSQTOP_LOOKUPD_ADDRESSES (or NSQTOP_LOOKUPD_ADDRESS for a single server).")
	flags.IntP("interval", "i", 2,
		"Refresh interval in seconds. Can also be set with NSQTOP_INTERVAL.")
	flags.Int("lookup-timeout", 2,
		"Timeout in seconds for lookupd and nsqd HTTP requests.")
	flags.Int64("depth-warn-threshold", 100,
		"Backlog depth at which a channel is shown as a warning.")
	flags.Int64("depth-crit-threshold", 1000,
		"Backlog depth at which a channel is shown as critical.")
	flags.Int("history-length", stores.DefaultHistoryLength,
		"Number of cycles kept in the in-flight trend window.")
	flags.String("log-level", "info",
		"Log level (trace, debug, info, warn, error).")
	flags.String("log-file", "",
		"File to append JSON logs to; logging is discarded when unset.")
	flags.String("debug-addr", "",
		"Optional listen address for /healthz and Prometheus /metrics (e.g. :6060).")

	bind := func(key, flag string) {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	bind(configs.KeyLookupdAddresses, "lookupd-http-address")
	bind(configs.KeyInterval, "interval")
	bind(configs.KeyLookupTimeout, "lookup-timeout")
	bind(configs.KeyDepthWarn, "depth-warn-threshold")
	bind(configs.KeyDepthCrit, "depth-crit-threshold")
	bind(configs.KeyHistoryLength, "history-length")
	bind(configs.KeyLogLevel, "log-level")
	bind(configs.KeyLogFile, "log-file")
	bind(configs.KeyDebugAddr, "debug-addr")

	_ = v.BindEnv(configs.KeyLookupdAddresses, "NSQTOP_LOOKUPD_ADDRESSES", "NSQTOP_LOOKUPD_ADDRESS")
	_ = v.BindEnv(configs.KeyInterval, "NSQTOP_INTERVAL")
	_ = v.BindEnv(configs.KeyLogLevel, "NSQTOP_LOG_LEVEL")
	_ = v.BindEnv(configs.KeyLogFile, "NSQTOP_LOG_FILE")
	_ = v.BindEnv(configs.KeyDebugAddr, "NSQTOP_DEBUG_ADDR")

	return cmd
}
