package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"rotcheck/internal/config"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/db"
	"rotcheck/internal/rec"
	"rotcheck/internal/server"
	"syscall"
)

func run(ctx context.Context, c config.Config) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	var store *db.Store
	if c.History.Enabled() {
		logger.Info("opening history", "file", c.History.File)
		store, err = db.Open(c.History)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		defer ctxlog.Close(ctx, "history", store)
	}

	logger.Info("starting server")
	srv := server.New(c.Server, store)

	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	file := "config.yaml"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	c, err := config.Load(ctx, file)
	if err != nil {
		ctxlog.Get(ctx).Error("failed to load config", "file", file, "error", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "rotserve", c.Log)
	logger := ctxlog.Get(ctx)

	err = run(ctx, c)
	if err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
