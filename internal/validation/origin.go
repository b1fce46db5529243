package validation

import (
	"fmt"
	"net/url"
)

// ValidateOrigin checks an Origin header value against the request host
// and an optional allow list. Entries of allowedOrigins may be full
// origins ("http://localhost:3000") or bare hosts ("localhost:3000").
func ValidateOrigin(origin, requestHost string, allowedOrigins []string) error {
	if origin == "" {
		return fmt.Errorf("origin header is required")
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin format: %w", err)
	}

	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return fmt.Errorf("invalid origin scheme '%s': only http and https are allowed", originURL.Scheme)
	}

	if originURL.Host != "" && originURL.Host == requestHost {
		return nil
	}

	for _, allowed := range allowedOrigins {
		if origin == allowed || originURL.Host == allowed {
			return nil
		}
	}

	return fmt.Errorf("origin '%s' is not in allowed origins list", origin)
}
