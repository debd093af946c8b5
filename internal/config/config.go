// Package config loads server settings from the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Config holds all runtime settings. Flags bound with BindFlags override values
// read from the environment.
type Config struct {
	Host    string `env:"HOST"`
	Port    int    `env:"PORT"     envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// ContentPath points at a YAML document replacing the embedded portfolio.
	ContentPath string `env:"PORTFOLIO_CONTENT"`

	// ResumeCandidates are tried in order, relative to ResumeRoot.
	ResumeRoot       string   `env:"RESUME_ROOT"       envDefault:"."`
	ResumeCandidates []string `env:"RESUME_CANDIDATES" envDefault:"Karan-Bhatia-Backend-Developer.pdf,resume.pdf,assets/resume.pdf" envSeparator:","`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers a flag per setting, defaulting to the current values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "interface to listen on")
	fs.IntVarP(&c.Port, "port", "p", c.Port, "port to listen on")
	fs.StringVar(&c.GinMode, "gin-mode", c.GinMode, "gin mode: debug, release or test")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json or pretty")
	fs.StringVar(&c.ContentPath, "content", c.ContentPath, "portfolio YAML overriding the built-in content")
	fs.StringVar(&c.ResumeRoot, "resume-root", c.ResumeRoot, "directory resume candidates are relative to")
	fs.StringSliceVar(&c.ResumeCandidates, "resume", c.ResumeCandidates, "resume file candidates, first existing wins")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown deadline")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown gin mode %q", c.GinMode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "pretty":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if len(c.ResumeCandidates) == 0 {
		return errors.New("at least one resume candidate is required")
	}
	for _, name := range c.ResumeCandidates {
		if !fs.ValidPath(name) {
			return fmt.Errorf("resume candidate %q must be a relative slash-separated path", name)
		}
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
