package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"atlaz/pkg/config"
	"atlaz/pkg/contracts"
	httputil "atlaz/pkg/http"
	"atlaz/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg         *config.Config
	server      *http.Server
	handler     http.Handler
	rateLimiter *middleware.ClientRateLimiter
	closers     []io.Closer
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp mounts the handlers and builds the middleware chain and server.
func (a *Application) SetApp(handlers ...contracts.Handler) {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(notFound)
	router.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)
	// CORS answers preflights before the router sees them.
	router.HandleOPTIONS = false

	var unlimited []string
	for _, h := range handlers {
		h.RegisterRoutes(router)
		if u, ok := h.(contracts.Unlimited); ok {
			unlimited = append(unlimited, u.UnlimitedPaths()...)
		}
	}

	a.rateLimiter = middleware.NewClientRateLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst, a.cfg.Log)

	var h http.Handler = router
	h = middleware.ContentTypeValidation(a.cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(h)
	h = middleware.RateLimit(a.rateLimiter, unlimited...)(h)
	h = middleware.CORS()(h)
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.handler = h

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// OnShutdown registers resources closed after the server stops.
func (a *Application) OnShutdown(c io.Closer) {
	a.closers = append(a.closers, c)
}

// Handler exposes the full middleware chain, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.handler
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig.String())
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.rateLimiter.Stop()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.cfg.Log.Warn("Failed to release resource", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "Not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "Method not allowed"})
}
