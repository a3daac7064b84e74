package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	v1 "github.com/pf9/region-wizard/api/v1"
	"github.com/pf9/region-wizard/internal/handlers"
	"github.com/pf9/region-wizard/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the registered regions and hosts over a read-only HTTP API",
		Example: "region-wizard serve --address :8000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := handlers.New(a.inventory)
			srv, err := server.NewServer(a.cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(sigCtx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-sigCtx.Done():
			}

			zap.S().Named("cli").Info("shutdown requested")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().String("address", ":8000", "Listen address")
	cmd.Flags().String("mode", "prod", "Server mode: dev or prod")
	mustBind(v, "server.address", cmd.Flags().Lookup("address"))
	mustBind(v, "server.mode", cmd.Flags().Lookup("mode"))

	return cmd
}
