package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{"valid http URL", "http://localhost:8080", false},
		{"valid https URL", "https://example.com", false},
		{"valid URL with path", "https://example.com/path/to/resource", false},
		{"javascript scheme", "javascript:alert('xss')", true},
		{"file scheme", "file:///etc/passwd", true},
		{"data scheme", "data:text/html,<script>alert('xss')</script>", true},
		{"command injection", "http://localhost:8080;rm -rf /", true},
		{"backticks", "http://localhost:8080/`whoami`", true},
		{"ampersand", "http://example.com?a=1&b=2", true},
		{"spaces", "http://local host:8080", true},
		{"missing host", "http:///path", true},
		{"newline", "http://localhost\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBrowserURL(t *testing.T) {
	u, err := BrowserURL("0.0.0.0", 8080)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", u)

	u, err = BrowserURL("127.0.0.1", 3000)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3000/", u)

	_, err = BrowserURL("evil;host", 80)
	assert.Error(t, err)
}

func TestValidateOrigin(t *testing.T) {
	allowed := []string{"http://localhost:3000", "127.0.0.1:3000"}

	tests := []struct {
		name      string
		origin    string
		host      string
		expectErr bool
	}{
		{"same host", "http://localhost:8080", "localhost:8080", false},
		{"https same host", "https://bizconsult.ru", "bizconsult.ru", false},
		{"allowed full origin", "http://localhost:3000", "localhost:8080", false},
		{"allowed bare host", "http://127.0.0.1:3000", "localhost:8080", false},
		{"empty", "", "localhost:8080", true},
		{"foreign", "http://evil.example", "localhost:8080", true},
		{"port mismatch", "http://localhost:9999", "localhost:8080", true},
		{"bad scheme", "file://localhost:8080", "localhost:8080", true},
		{"malformed", "http://%zz", "localhost:8080", true},
		{"null origin", "null", "localhost:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrigin(tt.origin, tt.host, allowed)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
