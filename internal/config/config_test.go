package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func write(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestLoad(t *testing.T) {
	file := write(t, `
log:
  level: debug
server:
  port: 8080
  limiterBuckets: 64
  limiterPeriod: 10ms
  limiterMaxConcurrent: 4
  maxBodyBytes: 65536
  shutdownTimeout: 5s
  adminKey: secret
  tls:
    certFile: cert.pem
    keyFile: key.pem
    reloadInterval: 1h
history:
  file: data/history.db
  timeout: 30s
`)

	c, err := Load(context.Background(), file)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := c.Log.Level, "debug"; have != want {
		t.Errorf("log level = %q, want %q", have, want)
	}
	if have, want := c.Server.Port, 8080; have != want {
		t.Errorf("port = %d, want %d", have, want)
	}
	if have, want := c.Server.LimiterPeriod, 10*time.Millisecond; have != want {
		t.Errorf("limiter period = %v, want %v", have, want)
	}
	if have, want := c.Server.TLS.ReloadInterval, time.Hour; have != want {
		t.Errorf("tls reload interval = %v, want %v", have, want)
	}
	if have, want := c.Server.AdminKey, "secret"; have != want {
		t.Errorf("admin key = %q, want %q", have, want)
	}
	if have, want := c.History.File, "data/history.db"; have != want {
		t.Errorf("history file = %q, want %q", have, want)
	}
	if have, want := c.History.Timeout, 30*time.Second; have != want {
		t.Errorf("history timeout = %v, want %v", have, want)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	file := write(t, "server:\n  port: 8080\n  antidosBuckets: 4\n")

	if _, err := Load(context.Background(), file); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
