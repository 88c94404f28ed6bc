package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	gql "github.com/dtroode/notekeeper-server/internal/api/graphql"
	"github.com/dtroode/notekeeper-server/internal/api/http/router"
	httpServer "github.com/dtroode/notekeeper-server/internal/api/http/server"
	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL HTTP server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST, JSON or multipart uploads)
  - GraphQL Playground at /graphql (GET) when HTTP_PLAYGROUND is true
  - Health check at /health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
		defer stop()
		return runServer(ctx)
	},
}

func runServer(ctx context.Context) error {
	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	es := gql.NewExecutableSchema(gql.Config{Resolvers: a.resolver})
	handler := router.New(
		gql.NewHandler(es, cfg.HTTP.MaxUploadSize, log),
		a.tokens,
		a.contextManager,
		a.db,
		log,
		cfg.HTTP.Playground,
	).Register()

	srv := httpServer.NewHTTPServer(handler, cfg.HTTP.Address, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var startErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		log.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			log.Error("failed to start server", "error", err)
			startErr = err
			cancel()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	log.Info("shutdown complete")
	return startErr
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
