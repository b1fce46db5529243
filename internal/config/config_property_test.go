//go:build property
// +build property

package config

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/viper"
)

// TestConfigurationProperties tests configuration validation properties
func TestConfigurationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid server config passes", prop.ForAll(
		func(port int, host string) bool {
			cfg := Default()
			cfg.Server.Port = port
			cfg.Server.Host = host
			return validateConfig(cfg) == nil
		},
		gen.IntRange(0, 65535),
		gen.RegexMatch(`^[a-z][a-z0-9]{0,20}$`),
	))

	properties.Property("out of range ports are rejected", prop.ForAll(
		func(offset int) bool {
			cfg := Default()
			cfg.Server.Port = 65536 + offset
			if validateConfig(cfg) == nil {
				return false
			}
			cfg.Server.Port = -1 - offset
			return validateConfig(cfg) != nil
		},
		gen.IntRange(0, 100000),
	))

	properties.Property("traversal is always rejected", prop.ForAll(
		func(name string) bool {
			return validatePath("../"+name) != nil
		},
		gen.AlphaString(),
	))

	properties.Property("path validation is deterministic", prop.ForAll(
		func(path string) bool {
			first := validatePath(path) == nil
			second := validatePath(path) == nil
			return first == second
		},
		gen.AnyString(),
	))

	properties.Property("defaults fill every zero value", prop.ForAll(
		func(lang string) bool {
			cfg := &Config{Site: SiteConfig{Lang: lang}}
			applyDefaults(viper.New(), cfg)
			return cfg.Server.Host != "" &&
				cfg.Server.Environment != "" &&
				cfg.Log.Level != "" &&
				cfg.Development.WatchDebounce > 0 &&
				(lang == "" || strings.EqualFold(cfg.Site.Lang, lang))
		},
		gen.OneConstOf("", "ru", "en", "ru-RU"),
	))

	properties.TestingRun(t)
}
