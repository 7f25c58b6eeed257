package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/web"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive triangulation page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := rootOpts.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			srv := web.Server(cfg.Server.Addr, log)
			errCh := make(chan error, 1)
			go func() {
				log.Info("[web] Сервер запущен", zap.String("addr", srv.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return errors.Wrap(err, "serve")
			case <-cmd.Context().Done():
			}

			log.Info("[web] Остановка сервера")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return errors.Wrap(err, "shutdown")
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "serve")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
