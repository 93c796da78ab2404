// Command rsheets-server runs the networked spreadsheet engine: it binds a
// TCP listener, wires the cell store, dependency graph, and engine, and
// serves get/set commands from any number of concurrent clients until
// interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sheeplet1/rsheets/internal/config"
	"github.com/Sheeplet1/rsheets/internal/dispatch"
	"github.com/Sheeplet1/rsheets/internal/engine"
	"github.com/Sheeplet1/rsheets/internal/graph"
	"github.com/Sheeplet1/rsheets/internal/logging"
	"github.com/Sheeplet1/rsheets/internal/server"
	"github.com/Sheeplet1/rsheets/internal/store"
	"github.com/Sheeplet1/rsheets/internal/transport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rsheets-server",
		Short: "Serve the networked spreadsheet engine over TCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(context.Background(), cfg)
		},
	}

	config.BindFlags(cmd, v)
	cmd.SilenceUsage = true
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	log := logging.New(cfg.LogLevel, cfg.LogPretty)

	listener, err := server.Listen(cfg.Addr)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("failed to bind listener")
		return err
	}
	log.Info().Str("addr", listener.Addr().String()).Msg("listening")

	manager := transport.NewTCPManager(listener)
	e := engine.New(store.New(), graph.New())
	d := dispatch.New(e)
	srv := server.New(manager, d, log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = srv.Run(ctx)
	log.Info().Msg("shutdown complete")
	return err
}
