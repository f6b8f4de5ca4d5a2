package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// ScheduleConfig optionally re-anchors the program cycle. The exercise table
// itself is compiled in and not configurable.
type ScheduleConfig struct {
	StartDate   string `yaml:"start_date"`
	DeloadWeeks []int  `yaml:"deload_weeks"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix LIFTDAY_ and underscore-separated paths:
//
//	LIFTDAY_SERVER_HOST, LIFTDAY_SERVER_PORT,
//	LIFTDAY_TS_ENABLED, LIFTDAY_TS_HOSTNAME, LIFTDAY_TS_STATE_DIR,
//	LIFTDAY_SCHEDULE_START_DATE
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTDAY_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTDAY_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTDAY_TS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("LIFTDAY_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("LIFTDAY_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("LIFTDAY_SCHEDULE_START_DATE"); v != "" {
		cfg.Schedule.StartDate = v
	}
}

func (c *Config) validate() error {
	if !c.Tailscale.Enabled && c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if c.Schedule.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Schedule.StartDate); err != nil {
			return fmt.Errorf("schedule.start_date must be YYYY-MM-DD: %w", err)
		}
	}
	for _, w := range c.Schedule.DeloadWeeks {
		if w < 1 {
			return fmt.Errorf("schedule.deload_weeks entries must be positive, got %d", w)
		}
	}
	return nil
}
