package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := a.cfg, a.logger
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			st, err := store.NewSQLiteStore(cfg.DBPath, logger)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate %s: %w", cfg.DBPath, err)
			}

			server := api.NewApp(api.NewSchedulerHandlerImpl(cfg, st, logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			addr := fmt.Sprintf(":%d", cfg.Port)
			go func() { errc <- server.Listen(addr) }()
			logger.Info("listening", "addr", addr, "db", cfg.DBPath)

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownErr := server.ShutdownWithContext(context.Background())
				if shutdownErr != nil {
					logger.Error("shutdown", logging.ErrAttr(shutdownErr))
				}
				return shutdownErr
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
	return cmd
}
