package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string  `yaml:"port"`
	RateLimit float64 `yaml:"rateLimit"`
	RateBurst int     `yaml:"rateBurst"`
	MinifyCSS bool    `yaml:"minifyCss"`
}

func DefaultConfig() Config {
	return Config{
		Port:      "8000",
		RateLimit: 10,
		RateBurst: 20,
		MinifyCSS: true,
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Port == "" {
		cfg.Port = DefaultConfig().Port
	}
	if cfg.RateBurst < 1 {
		cfg.RateBurst = 1
	}

	return cfg, nil
}

// ConfigPath names the YAML config file, from HELLO_CONFIG when set.
func ConfigPath(getenv func(string) string) string {
	if path := getenv("HELLO_CONFIG"); path != "" {
		return path
	}
	return "hello.config.yml"
}

// ApplyEnv overrides cfg with the environment. Malformed values are logged
// and leave the corresponding field unchanged.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	if port := getenv("GOPORT"); port != "" {
		cfg.Port = port
	}

	if v := getenv("HELLO_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Error("HELLO_RATE_LIMIT environment variable is not a number", "value", v)
		} else {
			cfg.RateLimit = limit
		}
	}

	if v := getenv("HELLO_RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("HELLO_RATE_BURST environment variable is not an integer", "value", v)
		} else if burst < 1 {
			cfg.RateBurst = 1
		} else {
			cfg.RateBurst = burst
		}
	}

	if v := getenv("HELLO_MINIFY_CSS"); v != "" {
		minify, err := strconv.ParseBool(v)
		if err != nil {
			slog.Error("HELLO_MINIFY_CSS environment variable is not a boolean", "value", v)
		} else {
			cfg.MinifyCSS = minify
		}
	}

	return cfg
}
