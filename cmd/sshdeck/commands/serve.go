package commands

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sshdeck/cmd/sshdeck/config"
	"sshdeck/internal/control"
	"sshdeck/internal/logger"

	"github.com/spf13/cobra"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sshdeck control API",
	Long: `Run the sshdeck control API: a local JSON endpoint exposing connection
open/exec/directory/close/list operations over a process-scoped connection
registry.

Connections opened through the API live until they are closed or the process
exits; they do not survive a restart.`,
	Run: func(cmd *cobra.Command, _ []string) {
		mux := http.NewServeMux()

		control.RegisterRoutes(mux, controlService)

		server := &http.Server{
			Addr:    config.Config.ControlBindAddr,
			Handler: mux,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)

		go func() {
			logger.Info("Control API listening on %s", server.Addr)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			cmd.PrintErrf("❌ Control API failed: %v\n", err)
		case <-ctx.Done():
			logger.Info("Shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				cmd.PrintErrf("❌ Shutdown error: %v\n", err)
			}
		}

		registry.CloseAll()
	},
}
