package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helmcode/rawmat/pkg/server"
)

func NewServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, version)
		},
	}
}

func runServe(cmd *cobra.Command, version string) error {
	rt, err := loadRuntime(runtimeOptions{})
	if err != nil {
		return err
	}

	log.Info().
		Str("version", version).
		Str("environment", rt.cfg.Server.Environment).
		Str("provider", rt.analyzer.Provider()).
		Str("model", rt.analyzer.Model()).
		Float64("rate_per_second", rt.cfg.RateLimit.PerSecond).
		Int("rate_burst", rt.cfg.RateLimit.Burst).
		Msg("starting rawmat server")

	handler := server.NewHandler(rt.analyzer, version)
	router := server.SetupRouter(rt.cfg, handler)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, fmt.Sprintf(":%s", rt.cfg.Server.Port), router)
}
