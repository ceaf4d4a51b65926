// Package config holds the settings of the TokenKeeper CLI: defaults,
// JSON overlay, environment and command-line flags, applied in that order.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the TokenKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server's gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
type Config struct {
	ServerEndpointAddr string        `env:"TOKENKEEPER_SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"TOKENKEEPER_REQUEST_TIMEOUT"`
}

// GlobalFlags are the command-line flags owned by this package. The CLI
// strips them before parsing its subcommand.
var GlobalFlags = []string{"-a", "-t", "-c", "-config"}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
