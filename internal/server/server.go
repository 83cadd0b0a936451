// Package server exposes the rotation check over HTTP.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/db"
	"time"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	addr            string
	handler         http.Handler
	limiter         *limiter
	tls             *tlsLoader
	shutdownTimeout time.Duration
}

// New builds the server. store may be nil, which disables the history.
func New(config Config, store *db.Store) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.LimiterBuckets == 0 {
		panic("server: limiterBuckets is required")
	}
	if config.LimiterPeriod == 0 {
		panic("server: limiterPeriod is required")
	}
	if config.LimiterMaxConcurrent == 0 {
		panic("server: limiterMaxConcurrent is required")
	}
	if config.MaxBodyBytes == 0 {
		panic("server: maxBodyBytes is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}

	limit := newLimiter(config.LimiterBuckets, config.LimiterPeriod, config.LimiterMaxConcurrent, statusHandler(http.StatusTooManyRequests))

	check := &checker{maxBodyBytes: config.MaxBodyBytes}
	if store != nil {
		check.history = store
	}

	mux := http.NewServeMux()

	slog.Info("registering handler", "path", "/check")
	mux.Handle("GET /check", limit.middleware(http.HandlerFunc(check.get)))
	mux.Handle("POST /check", limit.middleware(http.HandlerFunc(check.post)))

	mux.HandleFunc("GET /healthz", healthHandler)

	if store != nil && config.AdminKey != "" {
		adm := newAdmin(config.AdminKey, http.NotFoundHandler())
		h := &history{store: store}

		slog.Info("registering handler", "path", "/history")
		mux.Handle("GET /history", adm.middleware(http.HandlerFunc(h.list)))
		mux.Handle("GET /history/stats", adm.middleware(http.HandlerFunc(h.stats)))
	} else {
		slog.Info("history endpoints disabled", "history", store != nil, "admin_key", config.AdminKey != "")
	}

	handler := http.Handler(mux)
	handler = recoverMiddleware(statusHandler(http.StatusInternalServerError), handler)
	handler = headersMiddleware(handler)
	handler = logMiddleware(handler)

	var loader *tlsLoader
	if config.TLS.Enabled() {
		loader = newTLSLoader(config.TLS)
	}

	return &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		limiter:         limit,
		tls:             loader,
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := ctxlog.Get(ctx)
	defer s.limiter.stop()

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}

	srv := &http.Server{
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	if s.tls != nil {
		srv.TLSConfig = s.tls.config()
		ln = tls.NewListener(ln, srv.TLSConfig)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", "addr", ln.Addr().String(), "tls", s.tls != nil)
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	})

	if s.tls != nil {
		g.Go(func() error {
			s.tls.reloadLoop(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
			return fmt.Errorf("server: shutdown: %w", err)
		} else if err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}

		logger.Info("all clients closed successfully")
		return nil
	})

	return g.Wait()
}
