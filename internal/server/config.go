package server

import (
	"time"
)

type Config struct {
	Port                 int           `yaml:"port"`
	LimiterBuckets       int           `yaml:"limiterBuckets"`
	LimiterPeriod        time.Duration `yaml:"limiterPeriod"`
	LimiterMaxConcurrent int           `yaml:"limiterMaxConcurrent"`
	MaxBodyBytes         int64         `yaml:"maxBodyBytes"`
	ShutdownTimeout      time.Duration `yaml:"shutdownTimeout"`
	// AdminKey guards the history endpoints. Empty disables them.
	AdminKey string    `yaml:"adminKey"`
	TLS      TLSConfig `yaml:"tls"`
}

type TLSConfig struct {
	CertFile       string        `yaml:"certFile"`
	KeyFile        string        `yaml:"keyFile"`
	ReloadInterval time.Duration `yaml:"reloadInterval"`
}

func (c TLSConfig) Enabled() bool {
	return c.CertFile != "" || c.KeyFile != ""
}
