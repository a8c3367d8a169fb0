package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefits-engine/internal/handler"
	"benefits-engine/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the eligibility HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var st store.Store
		if cfg.Store.Path != "" {
			s, err := store.NewSQLite(cfg.Store.Path)
			if err != nil {
				return eris.Wrap(err, "open store")
			}
			defer s.Close() //nolint:errcheck
			if err := s.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
			st = s
			zap.L().Info("evaluation history enabled", zap.String("path", cfg.Store.Path))
		}

		h := handler.New(st, handler.Options{
			BatchConcurrency: cfg.Engine.BatchConcurrency,
			MaxBatchSize:     cfg.Engine.MaxBatchSize,
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &fasthttp.Server{
			Handler:            h.Serve,
			Name:               "benefits-engine",
			ReadTimeout:        cfg.Server.ReadTimeout(),
			WriteTimeout:       cfg.Server.WriteTimeout(),
			MaxRequestBodySize: cfg.Server.MaxBodyBytes,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
				zap.L().Error("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(fmt.Sprintf(":%d", port)); err != nil {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
