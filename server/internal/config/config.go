package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the dashboard configuration.
const (
	DefaultHTTPPort        = 8050
	DefaultShutdownTimeout = 5 * time.Second
	DefaultDatasetPath     = "spacex_launch_dash.csv"
	DefaultSliderMin       = 0
	DefaultSliderMax       = 10000
	DefaultSliderStep      = 1000
	DefaultLogLevel        = "info"
)

// DefaultSites is the dropdown enumeration used when dataset.sites is absent.
var DefaultSites = []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}

// Config is the top-level configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Slider  SliderConfig  `yaml:"slider"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// HTTPPort serves the page, the REST API, the WebSocket channel and /metrics.
	HTTPPort int `yaml:"http_port"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// PrettyHTML indents the rendered page. Useful when reading page source.
	PrettyHTML bool `yaml:"pretty_html"`
}

// DatasetConfig locates the launch records and names the selectable sites.
type DatasetConfig struct {
	// Path is the CSV file loaded once at startup.
	Path string `yaml:"path"`

	// Sites is the fixed list offered by the site dropdown, after "All Sites".
	Sites []string `yaml:"sites"`
}

// SliderConfig bounds the payload range slider.
type SliderConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel converts Level to a slog.Level. Validation guarantees a known
// value; anything else maps to Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the config file at path.
// Missing fields are filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        DefaultHTTPPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Dataset: DatasetConfig{
			Path:  DefaultDatasetPath,
			Sites: append([]string(nil), DefaultSites...),
		},
		Slider: SliderConfig{
			Min:  DefaultSliderMin,
			Max:  DefaultSliderMax,
			Step: DefaultSliderStep,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	seen := make(map[string]bool, len(cfg.Dataset.Sites))
	for i, s := range cfg.Dataset.Sites {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("dataset.sites[%d] is empty", i)
		}
		if s == "ALL" {
			return fmt.Errorf("dataset.sites[%d]: %q is reserved for All Sites", i, s)
		}
		if seen[s] {
			return fmt.Errorf("dataset.sites[%d]: duplicate site %q", i, s)
		}
		seen[s] = true
	}
	if cfg.Slider.Min < 0 {
		return fmt.Errorf("slider.min must not be negative")
	}
	if cfg.Slider.Max <= cfg.Slider.Min {
		return fmt.Errorf("slider.max %v must be greater than slider.min %v", cfg.Slider.Max, cfg.Slider.Min)
	}
	if cfg.Slider.Step <= 0 {
		return fmt.Errorf("slider.step must be positive")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	return nil
}
