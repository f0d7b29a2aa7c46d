package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bvrgo/buyrent-calculator/internal/server"
)

var (
	flagServeAddr  string
	flagServeRedis string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the projection engine over HTTP",
	Long: "Start an HTTP server with POST /api/simulate and POST /api/breakeven.\n" +
		"Results are cached by parameter hash, in Redis when --redis is set.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", server.DefaultListenAddress, "Listen address")
	serveCmd.Flags().StringVar(&flagServeRedis, "redis", "", "Redis address for the shared result cache (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var cache server.ResultCache
	if flagServeRedis != "" {
		cache = server.NewRedisCache(flagServeRedis)
		log.Printf("using Redis result cache at %s", flagServeRedis)
	} else {
		cache = server.NewMemoryCache()
	}

	limiter := server.NewRateLimiter(server.DefaultRateLimit, server.DefaultRefillWindow)
	defer limiter.Stop()

	mux := server.NewMux(newEngine(), cache, limiter)

	srv := &http.Server{
		Addr:         flagServeAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", flagServeAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Println("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
