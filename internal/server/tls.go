package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"rotcheck/internal/ctxlog"
	"sync/atomic"
	"time"
)

const defaultTLSReloadInterval = time.Hour

// tlsLoader keeps the current certificate and swaps it in place,
// so renewed certificates are served without a restart.
type tlsLoader struct {
	certFile string
	keyFile  string
	interval time.Duration

	cert atomic.Pointer[tls.Certificate]
}

func newTLSLoader(config TLSConfig) *tlsLoader {
	if config.CertFile == "" || config.KeyFile == "" {
		panic("server: tls needs both certFile and keyFile")
	}
	if config.ReloadInterval == 0 {
		config.ReloadInterval = defaultTLSReloadInterval
	}

	l := &tlsLoader{
		certFile: config.CertFile,
		keyFile:  config.KeyFile,
		interval: config.ReloadInterval,
	}

	err := l.load()
	if err != nil {
		panic(fmt.Errorf("server: %w", err))
	}

	return l
}

func (l *tlsLoader) load() error {
	c, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return fmt.Errorf("load tls cert: %w", err)
	}

	l.cert.Store(&c)
	return nil
}

func (l *tlsLoader) getCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return l.cert.Load(), nil
}

func (l *tlsLoader) config() *tls.Config {
	return &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: l.getCertificate,
	}
}

func (l *tlsLoader) reloadLoop(ctx context.Context) {
	logger := ctxlog.Get(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			err := l.load()
			if err != nil {
				logger.Error("reload tls cert", "error", err)
			} else {
				logger.Info("reloaded tls cert")
			}
		}
	}
}
