package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	kdl "github.com/sblinch/kdl-go"

	"github.com/ethmarks/fphf/internal/logging"
	"github.com/ethmarks/fphf/internal/search"
)

const defaultConfigPath = "./config/config.kdl"

type Config struct {
	LogLevel       string `kdl:"log-level"`
	Threads        int    `kdl:"threads"`
	ReportInterval string `kdl:"report-interval"`
	MaxDigits      int    `kdl:"max-digits"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		Threads:        0,
		ReportInterval: "1s",
		MaxDigits:      search.MaxDigits,
	}
}

// InitializeConfig loads the KDL config file over the defaults and installs
// the global logger. An empty path means the default location, which is
// allowed to be absent; an explicit path must exist.
func InitializeConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := kdl.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "unmarshal kdl config %s", path)
		}
	case explicit || !os.IsNotExist(err):
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	logging.Setup(logging.ParseLevel(cfg.LogLevel))
	return cfg, nil
}

// Interval parses the report cadence.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.ReportInterval)
	if err != nil {
		return 0, errors.Wrapf(err, "parse report-interval %q", c.ReportInterval)
	}
	if d <= 0 {
		return 0, errors.Errorf("report-interval %q must be positive", c.ReportInterval)
	}
	return d, nil
}
