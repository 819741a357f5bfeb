// Package config loads the blog configuration.
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, then BLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/infra/adapter/persistence/file"
	"portfolio-blog/internal/infra/content"
	"portfolio-blog/internal/observability/logging"
	"portfolio-blog/internal/utils/paths"
	envcfg "portfolio-blog/pkg/config"
)

// ConfigPathEnv names the environment variable that points at the YAML file.
const ConfigPathEnv = "BLOG_CONFIG"

// Config is the complete blog configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`

	// SiteURL is the public base URL of the site. Optional.
	SiteURL string `yaml:"site_url"`
}

type ContentConfig struct {
	Dir             string   `yaml:"dir"`
	Extensions      []string `yaml:"extensions"`
	ReadConcurrency int      `yaml:"read_concurrency"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RecentLimit     int           `yaml:"recent_limit"`
	MaxLimit        int           `yaml:"max_limit"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ExportConfig struct {
	OutputDir     string        `yaml:"output_dir"`
	Watch         bool          `yaml:"watch"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Content: ContentConfig{
			Dir:             "_posts",
			Extensions:      []string{content.DefaultExtension},
			ReadConcurrency: file.DefaultReadConcurrency,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			RecentLimit:     pagination.DefaultConfig().DefaultLimit,
			MaxLimit:        pagination.DefaultConfig().MaxLimit,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Export: ExportConfig{
			OutputDir:     "public",
			WatchDebounce: 200 * time.Millisecond,
		},
		Log: LogConfig{
			Format: logging.FormatJSON,
			Level:  "info",
		},
	}
}

// Load builds the configuration. path may be empty, in which case BLOG_CONFIG
// is consulted; when neither names a file only defaults and environment apply.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	// #nosec G304 -- path comes from the --config flag or BLOG_CONFIG
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Content.Dir = envcfg.GetEnvString("BLOG_CONTENT_DIR", c.Content.Dir)
	c.Content.Extensions = envcfg.GetEnvStringList("BLOG_CONTENT_EXTENSIONS", c.Content.Extensions)
	c.Content.ReadConcurrency = envcfg.GetEnvInt("BLOG_READ_CONCURRENCY", c.Content.ReadConcurrency)

	c.Server.Addr = envcfg.GetEnvString("BLOG_ADDR", c.Server.Addr)
	c.Server.RecentLimit = envcfg.GetEnvInt("BLOG_RECENT_LIMIT", c.Server.RecentLimit)
	c.Server.MaxLimit = envcfg.GetEnvInt("BLOG_MAX_LIMIT", c.Server.MaxLimit)
	c.Server.RequestTimeout = envcfg.GetEnvDuration("BLOG_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = envcfg.GetEnvDuration("BLOG_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Export.OutputDir = envcfg.GetEnvString("BLOG_OUTPUT_DIR", c.Export.OutputDir)
	c.Export.Watch = envcfg.GetEnvBool("BLOG_WATCH", c.Export.Watch)
	c.Export.WatchDebounce = envcfg.GetEnvDuration("BLOG_WATCH_DEBOUNCE", c.Export.WatchDebounce)

	c.Log.Format = envcfg.GetEnvString("BLOG_LOG_FORMAT", c.Log.Format)
	c.Log.Level = envcfg.GetEnvString("BLOG_LOG_LEVEL", c.Log.Level)

	c.SiteURL = envcfg.GetEnvString("BLOG_SITE_URL", c.SiteURL)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Content.Dir == "" {
		errs = append(errs, errors.New("content.dir is required"))
	}
	if len(c.Content.Extensions) == 0 {
		errs = append(errs, errors.New("content.extensions must not be empty"))
	}
	if c.Content.ReadConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("content.read_concurrency must be positive, got %d", c.Content.ReadConcurrency))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.MaxLimit <= 0 {
		errs = append(errs, fmt.Errorf("server.max_limit must be positive, got %d", c.Server.MaxLimit))
	}
	if c.Server.RecentLimit <= 0 || c.Server.RecentLimit > c.Server.MaxLimit {
		errs = append(errs, fmt.Errorf("server.recent_limit must be between 1 and max_limit, got %d", c.Server.RecentLimit))
	}
	if c.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout cannot be negative, got %v", c.Server.RequestTimeout))
	}
	if err := envcfg.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: %w", err))
	}
	if c.Export.OutputDir == "" {
		errs = append(errs, errors.New("export.output_dir is required"))
	}
	if c.Content.Dir != "" && c.Export.OutputDir != "" {
		if overlap, err := paths.Overlap(c.Content.Dir, c.Export.OutputDir); err != nil {
			errs = append(errs, fmt.Errorf("export.output_dir: %w", err))
		} else if overlap {
			errs = append(errs, fmt.Errorf("export.output_dir %q must not equal, contain, or sit inside content.dir %q",
				c.Export.OutputDir, c.Content.Dir))
		}
	}
	if err := envcfg.ValidateDurationRange(c.Export.WatchDebounce, 10*time.Millisecond, time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("export.watch_debounce: %w", err))
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatText {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", logging.FormatJSON, logging.FormatText, c.Log.Format))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.SiteURL != "" {
		if err := entity.ValidateURL(c.SiteURL); err != nil {
			errs = append(errs, fmt.Errorf("site_url: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Pagination returns the HTTP limit settings.
func (c *Config) Pagination() pagination.Config {
	return pagination.Config{DefaultLimit: c.Server.RecentLimit, MaxLimit: c.Server.MaxLimit}
}
