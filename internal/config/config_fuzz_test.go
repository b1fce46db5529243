package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FuzzLoadFrom tests configuration loading with malformed YAML input
func FuzzLoadFrom(f *testing.F) {
	f.Add(`server:
  port: 8080
  host: localhost
site:
  lang: ru`)

	f.Add(`server:
  port: "invalid_port"`)

	f.Add(`site:
  assets_dir: ../../etc`)

	f.Add(`development:
  watch_debounce: -1s`)

	f.Add(`malformed: yaml: content`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, yamlContent string) {
		if len(yamlContent) > 50000 {
			t.Skip("Config content too large")
		}

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(yamlContent)); err != nil {
			return
		}

		config, err := LoadFrom(v)
		if err != nil {
			return
		}

		if config.Server.Port < 0 || config.Server.Port > 65535 {
			t.Errorf("Invalid port range: %d", config.Server.Port)
		}
		if strings.Contains(config.Site.AssetsDir, "..") {
			t.Errorf("Potentially dangerous path traversal: %q", config.Site.AssetsDir)
		}
		if config.Development.WatchDebounce < 0 {
			t.Errorf("Negative debounce: %v", config.Development.WatchDebounce)
		}

		// A loaded config survives a YAML round trip through its own tags.
		out, err := yaml.Marshal(config)
		if err != nil {
			t.Fatalf("marshal loaded config: %v", err)
		}
		var back Config
		if err := yaml.Unmarshal(out, &back); err != nil {
			t.Fatalf("unmarshal loaded config: %v", err)
		}
		if back.Server.Port != config.Server.Port {
			t.Errorf("port changed in round trip: %d != %d", back.Server.Port, config.Server.Port)
		}
	})
}
