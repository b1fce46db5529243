package errors

import (
	"fmt"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// SuggestionContext provides context for generating suggestions
type SuggestionContext struct {
	ConfigPath string
	AssetsDir  string
}

// ServerStartError generates suggestions for server bind failures
func ServerStartError(err error, port int, ctx *SuggestionContext) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{}

	errStr := err.Error()

	if strings.Contains(errStr, "address already in use") || strings.Contains(errStr, "bind") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Port already in use",
			Description: fmt.Sprintf("Port %d is already being used by another process", port),
			Command:     fmt.Sprintf("lsof -i :%d", port),
		})

		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Use a different port",
			Description: "Start the server on a different port",
			Command:     fmt.Sprintf("bizconsult serve --port %d", port+1),
		})

		if ctx != nil && ctx.ConfigPath != "" {
			suggestions = append(suggestions, ErrorSuggestion{
				Title:       "Change the configured port",
				Description: "Set server.port in " + ctx.ConfigPath,
				Example:     fmt.Sprintf("server:\n  port: %d", port+1),
			})
		}
	}

	if strings.Contains(errStr, "permission denied") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Permission denied",
			Description: "You don't have permission to bind to this port",
		})

		if port < 1024 {
			suggestions = append(suggestions, ErrorSuggestion{
				Title:       "Use unprivileged port",
				Description: "Ports below 1024 require root privileges",
				Command:     "bizconsult serve --port 8080",
			})
		}
	}

	return suggestions
}

// ConfigurationError generates suggestions for configuration load failures
func ConfigurationError(configError string, ctx *SuggestionContext) []ErrorSuggestion {
	if ctx == nil {
		ctx = &SuggestionContext{}
	}
	configPath := ctx.ConfigPath
	if configPath == "" {
		configPath = ".bizconsult.yml"
	}

	suggestions := []ErrorSuggestion{
		{
			Title:       "Check configuration file",
			Description: "Verify " + configPath + " exists and has valid syntax",
			Command:     "cat " + configPath,
		},
	}

	if strings.Contains(configError, "yaml") || strings.Contains(configError, "unmarshal") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Fix YAML syntax",
			Description: "There's a syntax error in your YAML configuration",
			Example:     "Use proper indentation and avoid tabs",
		})
	}

	if strings.Contains(configError, "lang") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Use a BCP 47 language tag",
			Description: "site.lang must be a tag such as ru or ru-RU",
			Example:     "site:\n  lang: ru",
		})
	}

	if strings.Contains(configError, "path") || strings.Contains(configError, "assets") {
		suggestion := ErrorSuggestion{
			Title:       "Check directory paths",
			Description: "Verify site.assets_dir is a relative path inside the project",
			Command:     "ls -la",
		}
		if ctx.AssetsDir != "" {
			suggestion.Command = "ls -la " + ctx.AssetsDir
		}
		suggestions = append(suggestions, suggestion)
	}

	if strings.Contains(configError, "trusted prox") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "List proxy addresses",
			Description: "server.trusted_proxies takes IP addresses or CIDR ranges",
			Example:     "server:\n  trusted_proxies: [\"10.0.0.0/8\"]",
		})
	}

	return suggestions
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
		output.WriteString("\n")
	}

	return output.String()
}

// EnhancedError wraps an error with suggestions
type EnhancedError struct {
	OriginalError error
	Title         string
	Suggestions   []ErrorSuggestion
}

// Error implements the error interface
func (e *EnhancedError) Error() string {
	return FormatSuggestions(e.Title, e.Suggestions)
}

// Unwrap returns the original error
func (e *EnhancedError) Unwrap() error {
	return e.OriginalError
}

// NewEnhancedError creates a new enhanced error with suggestions
func NewEnhancedError(title string, originalError error, suggestions []ErrorSuggestion) *EnhancedError {
	return &EnhancedError{
		OriginalError: originalError,
		Title:         title,
		Suggestions:   suggestions,
	}
}
