// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	// Dir receives one log file per process start. Empty logs to stderr only.
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

var setup = false

// Setup installs the default JSON logger for the program called name
// and stores it in the returned context. Later calls reuse the first logger.
func Setup(ctx context.Context, name string, config Config) context.Context {
	if setup {
		return Store(ctx, slog.Default())
	}

	logger := New(name, config)
	slog.SetDefault(logger)

	setup = true

	return Store(ctx, logger)
}

// New builds the logger Setup would install without making it the default.
func New(name string, config Config) *slog.Logger {
	var level slog.Level
	if config.Level != "" {
		err := level.UnmarshalText([]byte(config.Level))
		if err != nil {
			panic(fmt.Errorf("ctxlog: level: %w", err))
		}
	}

	w := io.Writer(os.Stderr)

	if config.Dir != "" {
		err := os.MkdirAll(config.Dir, 0755)
		if err != nil {
			panic(fmt.Errorf("ctxlog: create log dir: %w", err))
		}

		logFile, err := os.Create(filepath.Join(config.Dir, name+"-"+time.Now().Format("2006-01-02-15-04-05.log")))
		if err != nil {
			panic(fmt.Errorf("ctxlog: create log file: %w", err))
		}

		w = io.MultiWriter(os.Stderr, logFile)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).With("program", name)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

// Close closes closer and logs the failure, if any, under name.
func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
