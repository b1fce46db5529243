package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    - %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    - %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// ValidateConfigWithDetails performs comprehensive validation with detailed feedback.
// Unlike Load it also reports warnings, such as a missing assets directory.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateServerConfigDetails(&config.Server, result)
	validateSiteConfigDetails(&config.Site, result)
	validateDevelopmentConfigDetails(config, result)

	result.Valid = !result.HasErrors()

	return result
}

func validateServerConfigDetails(config *ServerConfig, result *ValidationResult) {
	if config.Port < 0 || config.Port > 65535 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.port",
			Value:   config.Port,
			Message: fmt.Sprintf("port %d is not in valid range 0-65535", config.Port),
			Suggestions: []string{
				"Use a port between 1024-65535 for non-privileged access",
			},
		})
	} else if config.Port > 0 && config.Port < 1024 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "server.port",
			Value:       config.Port,
			Message:     "ports below 1024 require elevated privileges",
			Suggestions: []string{"Put a reverse proxy in front of the site instead"},
		})
	}

	if config.Host != "" {
		if err := validateHostname(config.Host); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:       "server.host",
				Value:       config.Host,
				Message:     err.Error(),
				Suggestions: []string{"Use localhost, an IP address or a plain hostname"},
			})
		}
	}

	if _, err := config.TrustedProxyPrefixes(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:       "server.trusted_proxies",
			Value:       config.TrustedProxies,
			Message:     err.Error(),
			Suggestions: []string{"List IP addresses or CIDR ranges such as 10.0.0.0/8"},
		})
	}
}

func validateSiteConfigDetails(config *SiteConfig, result *ValidationResult) {
	if err := validateSiteConfig(config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "site",
			Value:   config,
			Message: err.Error(),
		})
		return
	}

	if config.AssetsDir != "" && !pathExists(config.AssetsDir) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "site.assets_dir",
			Value:       config.AssetsDir,
			Message:     "assets directory does not exist; /static/ will serve nothing",
			Suggestions: []string{"Create the directory or unset site.assets_dir"},
		})
	}
}

func validateDevelopmentConfigDetails(config *Config, result *ValidationResult) {
	if config.Development.HotReload && !config.Server.IsDevelopment() {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "development.hot_reload",
			Value:       true,
			Message:     "hot reload is ignored outside the development environment",
			Suggestions: []string{"Set server.environment to development"},
		})
	}

	if config.Development.HotReload && config.Site.AssetsDir == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:       "development.hot_reload",
			Value:       true,
			Message:     "hot reload has nothing to watch without site.assets_dir",
			Suggestions: []string{"Set site.assets_dir to your static files directory"},
		})
	}
}

func validateHostname(host string) error {
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if net.ParseIP(host) != nil {
		return nil
	}

	if host == "localhost" {
		return nil
	}

	hostnameRegex := regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	if !hostnameRegex.MatchString(host) {
		return fmt.Errorf("invalid hostname format")
	}

	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
