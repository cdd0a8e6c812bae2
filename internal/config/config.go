package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Model struct {
		BaseURL string `yaml:"baseURL"`
		Name    string `yaml:"name"`
		// APIKey comes from the environment only, never from the file.
		APIKey string `yaml:"-"`
	} `yaml:"model"`

	Analysis struct {
		Region           string `yaml:"region"`
		MaxTextBytes     int    `yaml:"maxTextBytes"`
		MaxImageBytes    int64  `yaml:"maxImageBytes"`
		FetchTimeoutSecs int    `yaml:"fetchTimeoutSecs"`
	} `yaml:"analysis"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	// Optional deployment credential for the HTTP surface. Empty disables auth.
	APIKey string `yaml:"apiKey"`
}

// Load reads config.yaml (the file is optional; defaults apply without it),
// then applies environment overrides. It fails when the model credential is
// absent so the process halts at startup rather than on the first request.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// run on defaults + environment
	default:
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if cfg.Model.APIKey == "" {
		return nil, fmt.Errorf("model API key not configured: set SATYACHECK_API_KEY or OPENAI_API_KEY")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Model.Name == "" {
		c.Model.Name = "gpt-4o-mini"
	}
	if c.Analysis.Region == "" {
		c.Analysis.Region = "Indian"
	}
	if c.Analysis.MaxTextBytes == 0 {
		c.Analysis.MaxTextBytes = 20000
	}
	if c.Analysis.MaxImageBytes == 0 {
		c.Analysis.MaxImageBytes = 8 << 20
	}
	if c.Analysis.FetchTimeoutSecs == 0 {
		c.Analysis.FetchTimeoutSecs = 10
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 30
	}
	if c.RateLimit.RefillRate == 0 {
		c.RateLimit.RefillRate = 1
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SATYACHECK_API_KEY"); v != "" {
		c.Model.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Model.APIKey = v
	}
	if v := os.Getenv("MODEL_BASE_URL"); v != "" {
		c.Model.BaseURL = v
	}
	if v := os.Getenv("MODEL_NAME"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("SERVICE_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// FetchTimeout helper for the URL fetcher
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Analysis.FetchTimeoutSecs) * time.Second
}
