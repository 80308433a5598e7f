package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/reelroll/internal/api/v1"
	"github.com/vmunix/reelroll/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	Args:  cobra.NoArgs,
	RunE:  runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	handler, err := a.apiHandler()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	a.log.Info("starting reelroll", "version", version, "config", a.configPath, "posters", a.posters.Enabled())

	runner := server.NewRunner(handler, server.Config{Addr: addr}, a.log.With("component", "server"))
	return runner.Run(ctx)
}

// apiHandler builds the v1 API wrapped in request logging.
func (a *app) apiHandler() (http.Handler, error) {
	deps := v1.ServerDeps{Picker: a.picker}
	if a.posters.Enabled() {
		deps.Posters = a.posters
	}

	api, err := v1.NewWithDeps(deps, v1.Config{
		Version: version,
		SiteURL: a.watchlists.BaseURL(),
	}, a.log.With("component", "api"))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	return v1.LogRequests(mux, a.log), nil
}
