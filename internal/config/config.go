package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"icon-active-addresses/internal/model"
)

const (
	DefaultEndpoint  = "https://tracker.icon.community/api/v1"
	DefaultPageSize  = 100
	DefaultOutputDir = "."

	DefaultRetryAttempts = 10
	DefaultRetryMaxWait  = 30 * time.Second
)

type TrackerConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type RangeConfig struct {
	StartTimestamp int64 `yaml:"start_timestamp"`
	EndTimestamp   int64 `yaml:"end_timestamp"`
}

type RetryConfig struct {
	// MaxAttempts defaults to DefaultRetryAttempts when omitted; a negative value retries a
	// failing page forever.
	MaxAttempts int           `yaml:"max_attempts"`
	Wait        time.Duration `yaml:"wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
}

type PaginationConfig struct {
	PageSize    int64                   `yaml:"page_size"`
	Termination model.TerminationPolicy `yaml:"termination"`
	StartDelay  time.Duration           `yaml:"start_delay"`
	PageDelay   time.Duration           `yaml:"page_delay"`
	Retry       RetryConfig             `yaml:"retry"`
}

type OutputConfig struct {
	Dir       string          `yaml:"dir"`
	NameStyle model.NameStyle `yaml:"name_style"`
}

type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

type AppConfig struct {
	Tracker    TrackerConfig    `yaml:"tracker"`
	Range      RangeConfig      `yaml:"range"`
	Pagination PaginationConfig `yaml:"pagination"`
	Output     OutputConfig     `yaml:"output"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Tracker.Endpoint == "" {
		c.Tracker.Endpoint = DefaultEndpoint
	}
	if c.Pagination.PageSize == 0 {
		c.Pagination.PageSize = DefaultPageSize
	}
	if c.Pagination.Termination == "" {
		c.Pagination.Termination = model.TerminateOnStatus
	}
	if c.Pagination.Retry.MaxAttempts == 0 {
		c.Pagination.Retry.MaxAttempts = DefaultRetryAttempts
	}
	if c.Pagination.Retry.Wait == 0 {
		c.Pagination.Retry.Wait = time.Second
	}
	if c.Pagination.Retry.MaxWait == 0 {
		c.Pagination.Retry.MaxWait = max(DefaultRetryMaxWait, c.Pagination.Retry.Wait)
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.NameStyle == "" {
		c.Output.NameStyle = model.NameStyleISO
	}
}

// Validate checks the settings a run cannot proceed without.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Tracker.Endpoint == "" {
		errs = append(errs, errors.New("tracker.endpoint is required"))
	}
	if c.Pagination.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("pagination.page_size must be positive, got %d", c.Pagination.PageSize))
	}
	if !c.Pagination.Termination.Valid() {
		errs = append(errs, fmt.Errorf("pagination.termination: unknown policy %q", c.Pagination.Termination))
	}
	if c.Pagination.Retry.MaxWait > 0 && c.Pagination.Retry.MaxWait < c.Pagination.Retry.Wait {
		errs = append(errs, errors.New("pagination.retry.max_wait must not be below retry.wait"))
	}
	if !c.Output.NameStyle.Valid() {
		errs = append(errs, fmt.Errorf("output.name_style: unknown style %q", c.Output.NameStyle))
	}
	if c.Range.EndTimestamp <= c.Range.StartTimestamp {
		errs = append(errs, fmt.Errorf("range: end_timestamp %d must be after start_timestamp %d",
			c.Range.EndTimestamp, c.Range.StartTimestamp))
	}
	return errors.Join(errs...)
}

func (c *AppConfig) TimeRange() model.TimeRange {
	return model.TimeRange{Start: c.Range.StartTimestamp, End: c.Range.EndTimestamp}
}
