package server

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/conneroisu/bizconsult/internal/config"
	"github.com/conneroisu/bizconsult/internal/logging"
	"github.com/conneroisu/bizconsult/internal/validation"
)

// SecurityConfig holds security configuration
type SecurityConfig struct {
	CSP                 *CSPConfig
	HSTS                *HSTSConfig
	XFrameOptions       string
	XContentTypeNoSniff bool
	ReferrerPolicy      string
	PermissionsPolicy   *PermissionsPolicyConfig
	AllowedOrigins      []string
	// TrustedProxies are the peers whose forwarding headers name the client.
	TrustedProxies []netip.Prefix
	RateLimiting   *RateLimitConfig
	Logger              logging.Logger
}

// CSPConfig holds Content Security Policy configuration
type CSPConfig struct {
	DefaultSrc              []string
	ScriptSrc               []string
	StyleSrc                []string
	ImgSrc                  []string
	ConnectSrc              []string
	FontSrc                 []string
	ObjectSrc               []string
	FrameAncestors          []string
	BaseURI                 []string
	FormAction              []string
	UpgradeInsecureRequests bool
}

// HSTSConfig holds HTTP Strict Transport Security configuration
type HSTSConfig struct {
	MaxAge            int
	IncludeSubDomains bool
	Preload           bool
}

// PermissionsPolicyConfig holds Permissions Policy configuration
type PermissionsPolicyConfig struct {
	Geolocation []string
	Camera      []string
	Microphone  []string
	Payment     []string
	USB         []string
	Fullscreen  []string
}

// RateLimitConfig holds rate limiting configuration for form posts
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int
	Enabled           bool
}

// Hosts serving the hero image and the team avatars.
var imageHosts = []string{"https://cdn.poehali.dev", "https://api.dicebear.com"}

// DefaultSecurityConfig returns a secure default configuration
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		CSP: &CSPConfig{
			DefaultSrc:     []string{"'self'"},
			ScriptSrc:      []string{"'self'"},
			StyleSrc:       []string{"'self'", "'unsafe-inline'"},
			ImgSrc:         append([]string{"'self'", "data:"}, imageHosts...),
			ConnectSrc:     []string{"'self'"},
			FontSrc:        []string{"'self'"},
			ObjectSrc:      []string{"'none'"},
			FrameAncestors: []string{"'none'"},
			BaseURI:        []string{"'self'"},
			FormAction:     []string{"'self'"},
		},
		HSTS: &HSTSConfig{
			MaxAge:            31536000, // 1 year
			IncludeSubDomains: true,
		},
		XFrameOptions:       "DENY",
		XContentTypeNoSniff: true,
		ReferrerPolicy:      "strict-origin-when-cross-origin",
		PermissionsPolicy: &PermissionsPolicyConfig{
			Fullscreen: []string{"self"},
		},
		RateLimiting: &RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         10,
			Enabled:           true,
		},
	}
}

// DevelopmentSecurityConfig returns a more permissive config for development
func DevelopmentSecurityConfig() *SecurityConfig {
	config := DefaultSecurityConfig()

	// The live-reload client talks to /ws.
	config.CSP.ConnectSrc = append(config.CSP.ConnectSrc, "ws:", "wss:")

	config.XFrameOptions = "SAMEORIGIN"
	config.CSP.FrameAncestors = []string{"'self'"}

	config.HSTS = nil

	config.AllowedOrigins = []string{
		"http://localhost:3000", "http://127.0.0.1:3000",
	}

	config.RateLimiting.RequestsPerMinute = 600
	config.RateLimiting.BurstSize = 100

	return config
}

// ProductionSecurityConfig returns a strict config for production
func ProductionSecurityConfig() *SecurityConfig {
	config := DefaultSecurityConfig()
	config.CSP.UpgradeInsecureRequests = true
	config.HSTS.Preload = true
	return config
}

// SecurityConfigFromAppConfig creates security config from application config
func SecurityConfigFromAppConfig(cfg *config.Config) *SecurityConfig {
	if cfg.Server.IsDevelopment() {
		return DevelopmentSecurityConfig()
	}
	return ProductionSecurityConfig()
}

// SecurityMiddleware applies the configured headers and rejects
// cross-origin writes.
func SecurityMiddleware(secConfig *SecurityConfig) func(http.Handler) http.Handler {
	if secConfig == nil {
		secConfig = DefaultSecurityConfig()
	}
	cspHeader := ""
	if secConfig.CSP != nil {
		cspHeader = buildCSPHeader(secConfig.CSP)
	}
	permissionsHeader := ""
	if secConfig.PermissionsPolicy != nil {
		permissionsHeader = buildPermissionsPolicyHeader(secConfig.PermissionsPolicy)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cspHeader != "" {
				h.Set("Content-Security-Policy", cspHeader)
			}
			if secConfig.HSTS != nil && r.TLS != nil {
				h.Set("Strict-Transport-Security", buildHSTSHeader(secConfig.HSTS))
			}
			if secConfig.XFrameOptions != "" {
				h.Set("X-Frame-Options", secConfig.XFrameOptions)
			}
			if secConfig.XContentTypeNoSniff {
				h.Set("X-Content-Type-Options", "nosniff")
			}
			if secConfig.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", secConfig.ReferrerPolicy)
			}
			if permissionsHeader != "" {
				h.Set("Permissions-Policy", permissionsHeader)
			}
			h.Set("Cross-Origin-Opener-Policy", "same-origin")

			if isWrite(r.Method) && !crossOriginAllowed(r, secConfig.AllowedOrigins) {
				if secConfig.Logger != nil {
					secConfig.Logger.Warn(r.Context(), nil,
						"Security: Invalid origin",
						"origin", r.Header.Get("Origin"),
						"ip", clientIP(r, secConfig.TrustedProxies))
				}
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isWrite(method string) bool {
	return method != http.MethodGet && method != http.MethodHead && method != http.MethodOptions
}

// crossOriginAllowed accepts requests without an Origin header (non-browser
// clients) and browser requests from the site itself or an allowed origin.
func crossOriginAllowed(r *http.Request, allowedOrigins []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return validation.ValidateOrigin(origin, r.Host, allowedOrigins) == nil
}

// buildCSPHeader constructs the Content-Security-Policy header value
func buildCSPHeader(csp *CSPConfig) string {
	var directives []string

	addDirective := func(name string, values []string) {
		if len(values) > 0 {
			directives = append(directives, fmt.Sprintf("%s %s", name, strings.Join(values, " ")))
		}
	}

	addDirective("default-src", csp.DefaultSrc)
	addDirective("script-src", csp.ScriptSrc)
	addDirective("style-src", csp.StyleSrc)
	addDirective("img-src", csp.ImgSrc)
	addDirective("connect-src", csp.ConnectSrc)
	addDirective("font-src", csp.FontSrc)
	addDirective("object-src", csp.ObjectSrc)
	addDirective("frame-ancestors", csp.FrameAncestors)
	addDirective("base-uri", csp.BaseURI)
	addDirective("form-action", csp.FormAction)

	if csp.UpgradeInsecureRequests {
		directives = append(directives, "upgrade-insecure-requests")
	}

	return strings.Join(directives, "; ")
}

// buildHSTSHeader constructs the Strict-Transport-Security header value
func buildHSTSHeader(hsts *HSTSConfig) string {
	header := fmt.Sprintf("max-age=%d", hsts.MaxAge)
	if hsts.IncludeSubDomains {
		header += "; includeSubDomains"
	}
	if hsts.Preload {
		header += "; preload"
	}
	return header
}

// buildPermissionsPolicyHeader constructs the Permissions-Policy header value
func buildPermissionsPolicyHeader(pp *PermissionsPolicyConfig) string {
	var policies []string

	addPolicy := func(name string, values []string) {
		policies = append(policies, fmt.Sprintf("%s=(%s)", name, strings.Join(values, " ")))
	}

	addPolicy("geolocation", pp.Geolocation)
	addPolicy("camera", pp.Camera)
	addPolicy("microphone", pp.Microphone)
	addPolicy("payment", pp.Payment)
	addPolicy("usb", pp.USB)
	addPolicy("fullscreen", pp.Fullscreen)

	return strings.Join(policies, ", ")
}

// clientIP returns the address of the client that sent r. Forwarding
// headers are read only when the peer is a trusted proxy, and
// X-Forwarded-For is walked from the right past trusted hops.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := remoteHost(r.RemoteAddr)
	if !isTrustedProxy(peer, trusted) {
		return peer
	}

	if values := r.Header.Values("X-Forwarded-For"); len(values) > 0 {
		hops := strings.Split(strings.Join(values, ","), ",")
		nearest := ""
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				return peer
			}
			addr = addr.Unmap()
			if !containsAddr(trusted, addr) {
				return addr.String()
			}
			nearest = addr.String()
		}
		if nearest != "" {
			return nearest
		}
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}
	return peer
}

// remoteHost strips the port from a RemoteAddr.
func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.Unmap().String()
	}
	return host
}

func isTrustedProxy(host string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return containsAddr(trusted, addr)
}

func containsAddr(prefixes []netip.Prefix, addr netip.Addr) bool {
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// retryAfterSeconds rounds d up to whole seconds for the Retry-After header.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
