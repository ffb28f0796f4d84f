package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/mealy/internal/adapters/http"
	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/pkg/adapters/memory"
	"github.com/aretw0/mealy/pkg/adapters/redis"
	"github.com/aretw0/mealy/pkg/adapters/yamltable"
	"github.com/aretw0/mealy/pkg/observability"
	"github.com/aretw0/mealy/pkg/ports"
	"github.com/aretw0/mealy/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session HTTP server",
	Long: `Starts the machine engine in server mode: one shared transition table, many
named sessions, exposed as a JSON API over HTTP. Sessions are held in memory
unless a Redis address is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		tablePath, _ := cmd.Flags().GetString("table")
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")

		logger := logging.New(slog.LevelInfo)

		table, err := yamltable.Load(tablePath)
		if err != nil {
			fmt.Printf("Error loading table: %v\n", err)
			os.Exit(1)
		}

		var store ports.SnapshotStore = memory.NewStore()
		if redisAddr != "" {
			store = redis.New(redisAddr, "", 0)
			logger.Info("using redis session store", "addr", redisAddr)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		sessions, err := session.NewManager(table, store,
			session.WithHooks(metrics.Hooks()),
			session.WithLogger(logger),
		)
		if err != nil {
			fmt.Printf("Error initializing session manager: %v\n", err)
			os.Exit(1)
		}

		r := chi.NewRouter()
		r.Mount("/", httpAdapter.NewHandler(sessions))
		r.Handle("/metrics", promhttp.Handler())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: r,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Mealy Server on %s\n", srv.Addr)
			fmt.Printf("Serving table: %s (%d rules)\n", tablePath, table.Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Mealy Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for durable sessions (host:port)")
}
