// Package config provides configuration management for the BizConsult site
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the BIZCONSULT_ prefix, defaults and validation. It manages
// server settings, the site language and static assets directory, the
// development live-reload options and the logger.
package config

import (
	"fmt"
	"net/netip"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/conneroisu/bizconsult/internal/errors"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Site        SiteConfig        `mapstructure:"site" yaml:"site"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" yaml:"port"`
	Host         string        `mapstructure:"host" yaml:"host"`
	Open         bool          `mapstructure:"open" yaml:"open"`
	Environment  string        `mapstructure:"environment" yaml:"environment"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Forwarded-For and X-Real-IP headers are believed.
	TrustedProxies []string `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
}

type SiteConfig struct {
	Lang      string `mapstructure:"lang" yaml:"lang"`
	AssetsDir string `mapstructure:"assets_dir" yaml:"assets_dir"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
}

type DevelopmentConfig struct {
	HotReload     bool          `mapstructure:"hot_reload" yaml:"hot_reload"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address is a single
// host range.
func (c ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Tag returns the parsed site language. Load guarantees it parses.
func (c SiteConfig) Tag() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.Russian
	}
	return tag
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v, applies defaults and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// log-level is a persistent CLI flag bound outside the log section
	if v.IsSet("log-level") && !v.IsSet("log.level") {
		config.Log.Level = v.GetString("log-level")
	}

	applyDefaults(v, &config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	config := &Config{}
	applyDefaults(viper.New(), config)
	return config
}

func applyDefaults(v *viper.Viper, config *Config) {
	if !v.IsSet("server.port") && config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Environment == "" {
		config.Server.Environment = EnvProduction
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 15 * time.Second
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 15 * time.Second
	}
	if config.Server.IdleTimeout == 0 {
		config.Server.IdleTimeout = 60 * time.Second
	}

	if config.Site.Lang == "" {
		config.Site.Lang = "ru"
	}

	if config.Development.WatchDebounce == 0 {
		config.Development.WatchDebounce = 300 * time.Millisecond
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if config.Development.WatchDebounce < 0 {
		return fmt.Errorf("development config: watch_debounce must not be negative")
	}

	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	switch config.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("environment %q must be %s or %s", config.Environment, EnvDevelopment, EnvProduction)
	}

	if config.ReadTimeout < 0 || config.WriteTimeout < 0 || config.IdleTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	if _, err := config.TrustedProxyPrefixes(); err != nil {
		return err
	}

	return nil
}

// validateSiteConfig validates the site language and assets directory
func validateSiteConfig(config *SiteConfig) error {
	if _, err := language.Parse(config.Lang); err != nil {
		return fmt.Errorf("lang %q is not a valid language tag: %w", config.Lang, err)
	}

	if config.AssetsDir != "" {
		if err := validatePath(config.AssetsDir); err != nil {
			return fmt.Errorf("invalid assets_dir: %w", errors.ErrInvalidPath(config.AssetsDir, err))
		}
	}

	return nil
}

func validateLogConfig(config *LogConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level %q must be one of debug, info, warn, error", config.Level)
	}

	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format %q must be text or json", config.Format)
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	if filepath.IsAbs(cleanPath) {
		return fmt.Errorf("path should be relative: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
