// Package config defines the pathstepd service configuration and loads it
// from YAML, with optional hot reload.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/pathstep/preset"
)

// ErrInvalidConfig indicates a configuration that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied by the loader to zero-valued fields.
const (
	DefaultAddr           = ":8080"
	DefaultReadTimeoutMs  = 10_000
	DefaultWriteTimeoutMs = 30_000
	DefaultIdleTimeoutMs  = 60_000
	DefaultMaxSessions    = 256
	DefaultMaxNodes       = 500
	DefaultMaxEdges       = 5000
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogMaxSizeMB   = 100
	DefaultLogMaxAgeDays  = 28
	DefaultLogMaxBackups  = 3
)

// Config is the root document.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	Log     LogConfig      `yaml:"log"`
	Presets []preset.Graph `yaml:"presets"`
}

// ServerConfig tunes the HTTP listener and session registry.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	ReadTimeoutMs  int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`
	IdleTimeoutMs  int    `yaml:"idle_timeout_ms"`
	MaxSessions    int    `yaml:"max_sessions"`
	MaxNodes       int    `yaml:"max_nodes"`
	MaxEdges       int    `yaml:"max_edges"`
}

// ReadTimeout returns ReadTimeoutMs as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutMs) * time.Millisecond
}

// WriteTimeout returns WriteTimeoutMs as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutMs) * time.Millisecond
}

// IdleTimeout returns IdleTimeoutMs as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMs) * time.Millisecond
}

// LogConfig selects the log level, format and destination. An empty File
// logs to stderr; otherwise the file is rotated by size.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with every default applied and no presets.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

func applyDefaults(c *Config) {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeoutMs == 0 {
		c.Server.ReadTimeoutMs = DefaultReadTimeoutMs
	}
	if c.Server.WriteTimeoutMs == 0 {
		c.Server.WriteTimeoutMs = DefaultWriteTimeoutMs
	}
	if c.Server.IdleTimeoutMs == 0 {
		c.Server.IdleTimeoutMs = DefaultIdleTimeoutMs
	}
	if c.Server.MaxSessions == 0 {
		c.Server.MaxSessions = DefaultMaxSessions
	}
	if c.Server.MaxNodes == 0 {
		c.Server.MaxNodes = DefaultMaxNodes
	}
	if c.Server.MaxEdges == 0 {
		c.Server.MaxEdges = DefaultMaxEdges
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = DefaultLogMaxAgeDays
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultLogMaxBackups
	}
}

// Validate checks:
//   - non-negative timeouts and session and graph size limits
//   - a known log level and format
//   - every preset (via preset.Validate) and unique preset names
func Validate(c *Config) error {
	var errs []string

	if c.Server.ReadTimeoutMs < 0 || c.Server.WriteTimeoutMs < 0 || c.Server.IdleTimeoutMs < 0 {
		errs = append(errs, "server: timeouts must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		errs = append(errs, "server: max_sessions must not be negative")
	}
	if c.Server.MaxNodes < 0 || c.Server.MaxEdges < 0 {
		errs = append(errs, "server: max_nodes and max_edges must not be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log: unknown format %q", c.Log.Format))
	}

	seen := make(map[string]int, len(c.Presets))
	for i := range c.Presets {
		p := &c.Presets[i]
		if err := preset.Validate(p); err != nil {
			errs = append(errs, fmt.Sprintf("presets[%d]: %v", i, err))
			continue
		}
		if prev, ok := seen[p.Name]; ok {
			errs = append(errs, fmt.Sprintf("presets[%d]: duplicate name %q (first at presets[%d])", i, p.Name, prev))
			continue
		}
		seen[p.Name] = i
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
