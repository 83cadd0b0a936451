package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"rotcheck/internal/config"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/db"
	"rotcheck/internal/rec"
	"syscall"
)

func run(ctx context.Context, c config.Config) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	if !c.History.Enabled() {
		return errors.New("history is disabled, set history.file")
	}

	logger.Info("opening history", "file", c.History.File)
	store, err := db.Open(c.History)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer ctxlog.Close(ctx, "history", store)

	for id, check := range store.All() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Info("check", "id", id, "a", check.A, "b", check.B, "mode", check.Mode,
			"rotation", check.Rotation, "offset", check.Offset, "time", check.Time)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	logger.Info("totals", "total", stats.Total, "rotations", stats.Rotations, "non_rotations", stats.NonRotations)

	return nil
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

	ctx = ctxlog.Setup(ctx, "rothistory", c.Log)
	logger := ctxlog.Get(ctx)

	err = run(ctx, c)
	if err != nil {
		logger.Error("stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
