// Package config loads the YAML file shared by rotserve and rothistory.
package config

import (
	"context"
	"fmt"
	"os"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/db"
	"rotcheck/internal/server"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Log     ctxlog.Config `yaml:"log"`
	Server  server.Config `yaml:"server"`
	History db.Config     `yaml:"history"`
}

// Load decodes filename strictly: unknown keys are an error.
func Load(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	return config, nil
}
