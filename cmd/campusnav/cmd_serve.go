package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/httpapi"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Data.Watch = watch
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the pathway document when it changes")

	return cmd
}

// serve loads the document, then runs the HTTP server and, if enabled, the
// file watcher until ctx is cancelled. Without watching, a document that
// fails to load is fatal; with watching the server starts anyway and
// answers 503 until a valid document appears.
func (a *app) serve(ctx context.Context) error {
	log := a.logger
	if err := a.load(ctx); err != nil {
		if !a.cfg.Data.Watch {
			return err
		}
		log.Warn("starting without a campus graph", "error", err)
	}

	gin.SetMode(a.cfg.Server.Mode)
	router := httpapi.NewRouter(httpapi.NewHandlers(a.finder, log), a.registry)
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("http server shutting down")

		return srv.Shutdown(shutdownCtx)
	})
	if a.cfg.Data.Watch {
		g.Go(func() error {
			return a.finder.WatchFile(ctx, a.cfg.Data.Path)
		})
	}

	return g.Wait()
}
