// Package server serves the BizConsult landing page and its contact form
// post-back, with security headers, per-client rate limiting on the form
// and, in development, a websocket live-reload channel driven by the
// assets watcher.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/conneroisu/bizconsult/internal/config"
	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/conneroisu/bizconsult/internal/logging"
	"github.com/conneroisu/bizconsult/internal/page"
	"github.com/conneroisu/bizconsult/internal/validation"
	"github.com/conneroisu/bizconsult/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

// Server serves the site.
type Server struct {
	config   *config.Config
	logger   logging.Logger
	security *SecurityConfig
	limiter  *RateLimiter
	hub      *Hub
	watcher  *watcher.FileWatcher
	handler  http.Handler

	serverMutex sync.RWMutex // protects httpServer, listener and cancel
	httpServer  *http.Server
	listener    net.Listener
	cancel      context.CancelFunc
	background  sync.WaitGroup

	shutdownOnce sync.Once
	shutdownErr  error
}

// New builds a server for cfg. Live reload is enabled only when hot reload
// is requested in the development environment.
func New(cfg *config.Config, logger logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "server config is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.WithComponent("server")

	trusted, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid server.trusted_proxies")
	}

	security := SecurityConfigFromAppConfig(cfg)
	security.Logger = logger
	security.TrustedProxies = trusted

	s := &Server{
		config:   cfg,
		logger:   logger,
		security: security,
		limiter:  NewRateLimiter(security.RateLimiting, logger),
	}

	if cfg.Development.HotReload && cfg.Server.IsDevelopment() {
		s.hub = NewHub(security.AllowedOrigins, logger)

		if cfg.Site.AssetsDir != "" {
			fw, err := watcher.NewFileWatcher(cfg.Development.WatchDebounce, logger)
			if err != nil {
				s.limiter.Stop()
				return nil, fmt.Errorf("failed to create file watcher: %w", err)
			}
			s.watcher = fw
		}
	}

	s.handler = s.routes()
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// LiveReload reports whether the live-reload channel is enabled.
func (s *Server) LiveReload() bool {
	return s.hub != nil
}

// Hub returns the live-reload hub, or nil when live reload is off.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /contact", s.handleContactRedirect)
	mux.Handle("POST /contact", RateLimitMiddleware(s.limiter, s.security.TrustedProxies)(http.HandlerFunc(s.handleContact)))
	mux.HandleFunc("GET /health", s.handleHealth)

	if dir := s.config.Site.AssetsDir; dir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", noDirectoryListing(http.FileServer(http.Dir(dir)))))
	}

	if s.hub != nil {
		mux.Handle("GET /ws", s.hub)
		mux.HandleFunc("GET "+page.ReloadScriptPath, s.handleReloadScript)
	}

	var handler http.Handler = mux
	handler = SecurityMiddleware(s.security)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RecoverMiddleware(s.logger)(handler)
	return handler
}

// Start binds the configured address and serves until ctx is done or
// Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	addr := s.config.Server.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapNetwork(err, errors.ErrCodeServerStart, "failed to bind "+addr).
			WithContext("port", s.config.Server.Port)
	}

	runCtx, cancel := context.WithCancel(ctx)
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.config.Server.ReadTimeout,
		ReadHeaderTimeout: s.config.Server.ReadTimeout,
		WriteTimeout:      s.config.Server.WriteTimeout,
		IdleTimeout:       s.config.Server.IdleTimeout,
	}

	s.serverMutex.Lock()
	s.httpServer = srv
	s.listener = ln
	s.cancel = cancel
	s.serverMutex.Unlock()

	s.startLiveReload(runCtx)

	if s.config.Server.Open {
		go s.openBrowser(ln.Addr())
	}

	s.logger.Info(ctx, "Server listening",
		"addr", ln.Addr().String(),
		"environment", s.config.Server.Environment,
		"live_reload", s.LiveReload())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if err == http.ErrServerClosed {
			return nil
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Warn(ctx, shutdownErr, "Cleanup after server failure incomplete")
		}
		return fmt.Errorf("server error: %w", err)

	case <-runCtx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		err := s.Shutdown(shutdownCtx)
		<-serveErr
		return err
	}
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.serverMutex.RLock()
	defer s.serverMutex.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) startLiveReload(ctx context.Context) {
	if s.hub == nil {
		return
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.hub.Run(ctx)
	}()

	if s.watcher == nil {
		return
	}

	s.watcher.AddFilter(watcher.AssetFilter)
	s.watcher.AddFilter(watcher.NoHiddenFilter)
	s.watcher.AddFilter(watcher.NoGitFilter)
	s.watcher.AddFilter(watcher.NoEditorTempFilter)
	s.watcher.AddHandler(s.handleAssetChange)

	if err := s.watcher.AddRecursive(s.config.Site.AssetsDir); err != nil {
		s.logger.Warn(ctx, err, "Live reload disabled: cannot watch assets",
			"assets_dir", s.config.Site.AssetsDir)
		return
	}
	if err := s.watcher.Start(ctx); err != nil {
		s.logger.Warn(ctx, err, "Live reload disabled: watcher failed to start")
	}
}

// handleAssetChange tells every live-reload client to refresh.
func (s *Server) handleAssetChange(events []watcher.ChangeEvent) error {
	files := make([]string, 0, len(events))
	for _, e := range events {
		files = append(files, e.Path)
	}

	s.logger.Info(context.Background(), "Assets changed, reloading clients", "files", len(files))
	if !s.hub.Broadcast(UpdateMessage{Type: "reload", Files: files}) {
		return fmt.Errorf("live reload hub is not running")
	}
	return nil
}

// Shutdown stops the HTTP server and every background worker. It is safe
// to call more than once; later calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "Shutting down server")

		s.serverMutex.RLock()
		srv := s.httpServer
		cancel := s.cancel
		s.serverMutex.RUnlock()

		if cancel != nil {
			cancel()
		}

		var errs []error
		if srv != nil {
			errs = append(errs, srv.Shutdown(ctx))
		}
		if s.watcher != nil {
			errs = append(errs, s.watcher.Stop())
		}
		if s.hub != nil && srv != nil {
			errs = append(errs, s.hub.Wait(ctx))
		}
		s.background.Wait()
		s.limiter.Stop()

		s.shutdownErr = errors.CombineErrors(errs...)
	})

	return s.shutdownErr
}

func (s *Server) openBrowser(addr net.Addr) {
	time.Sleep(100 * time.Millisecond) // Give server time to start

	port := s.config.Server.Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}

	url, err := validation.BrowserURL(s.config.Server.Host, port)
	if err != nil {
		s.logger.Warn(context.Background(), err, "Browser open failed due to invalid URL")
		return
	}

	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}

	if err != nil {
		s.logger.Warn(context.Background(), err, "Failed to open browser", "url", url)
	}
}
