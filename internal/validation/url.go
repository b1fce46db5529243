// Package validation holds the request-level checks shared by the server
// and the CLI: URLs handed to the system browser and request origins.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL validates URLs for browser auto-open functionality
// Prevents command injection via URL parameters
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	// Only allow http/https schemes to prevent protocol handlers
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s (only http/https allowed)", parsed.Scheme)
	}

	dangerous := []string{";", "&", "|", "`", "$", "(", ")", "<", ">", "\"", "'", "\\", "\n", "\r"}
	for _, char := range dangerous {
		if strings.Contains(rawURL, char) {
			return fmt.Errorf("URL contains dangerous character: %s", char)
		}
	}

	if strings.Contains(rawURL, " ") {
		return fmt.Errorf("URL contains spaces (possible command injection attempt)")
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}

// BrowserURL builds the address opened by `serve --open`. Wildcard bind
// addresses are replaced with localhost.
func BrowserURL(host string, port int) (string, error) {
	switch host {
	case "", "0.0.0.0", "::", "[::]":
		host = "localhost"
	}
	u := fmt.Sprintf("http://%s:%d/", host, port)
	if err := ValidateURL(u); err != nil {
		return "", err
	}
	return u, nil
}
