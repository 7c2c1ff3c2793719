package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/sxm"
	httpAdapter "github.com/aretw0/sxm/internal/adapters/http"
	"github.com/aretw0/sxm/internal/logging"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long: `Serves the model catalogue over HTTP: model listings, topology diagrams,
generated test suites and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		listen, _ := cmd.Flags().GetString("listen")
		if !cmd.Flags().Changed("listen") {
			listen = cfg.Listen
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))
		handler := httpAdapter.NewHandler(sxm.DefaultRegistry(), logger)

		srv := &http.Server{
			Addr:    listen,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
		}
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
