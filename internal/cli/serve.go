package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/themizzi/jupitertoys/internal/catalog"
	"github.com/themizzi/jupitertoys/internal/config"
	"github.com/themizzi/jupitertoys/internal/handlers"
	"github.com/themizzi/jupitertoys/internal/repository"
	"github.com/themizzi/jupitertoys/internal/services"
)

// ServerDependencies holds all dependencies needed for the demo shop server
type ServerDependencies struct {
	ServerConfig    config.ServerConfig
	FeedbackService services.FeedbackService
	ShopHandler     http.Handler
	FeedbackHandler http.Handler
	HealthHandler   http.Handler
}

// BuildServerDependencies wires the shop, feedback and health handlers over an in-memory store
func BuildServerDependencies(cfg config.ServerConfig) (ServerDependencies, error) {
	deps := ServerDependencies{ServerConfig: cfg}

	feedbackRepo := repository.NewFeedbackRepository()
	deps.FeedbackService = services.NewFeedbackService(feedbackRepo)

	shopHandler, err := handlers.NewShopHandler(catalog.All(), cfg.FeedbackDelay)
	if err != nil {
		return deps, fmt.Errorf("failed to create shop handler: %w", err)
	}
	deps.ShopHandler = shopHandler
	deps.FeedbackHandler = handlers.NewFeedbackHandler(deps.FeedbackService)
	deps.HealthHandler = handlers.HealthHandler{}

	return deps, nil
}

// NewRouter returns the server's routes
func NewRouter(deps ServerDependencies) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", deps.ShopHandler)
	mux.Handle("/api/feedback", deps.FeedbackHandler)
	mux.Handle("/healthz", deps.HealthHandler)
	return mux
}

// RunServe starts the demo shop server and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown, then force close
	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
