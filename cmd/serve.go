package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/bizconsult/internal/config"
	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/conneroisu/bizconsult/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Serve the landing page and its contact form",
	Long: `Serve the BizConsult landing page. The contact form posts back to
/contact, where submissions are validated and the page is re-rendered with
inline errors or a confirmation.

With --hot-reload the server runs in the development environment, watches
the assets directory and reloads connected browsers when files change.

Examples:
  bizconsult serve                          # Serve on localhost:8080
  bizconsult serve -p 3000 --host 0.0.0.0   # Listen on all interfaces
  bizconsult serve --assets static --hot-reload --open`,
	RunE: runServe,
}

var serveFlags *StandardFlags

func init() {
	rootCmd.AddCommand(serveCmd)

	serveFlags = AddStandardFlags(serveCmd, "server")
	AddFlagValidation(serveCmd, "port", ValidatePort)

	SetViperBindings(serveCmd, map[string]string{
		"port":       "server.port",
		"host":       "server.host",
		"open":       "server.open",
		"hot-reload": "development.hot_reload",
		"assets":     "site.assets_dir",
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Live reload only runs in development.
	if cmd.Flags().Changed("hot-reload") && cfg.Development.HotReload {
		cfg.Server.Environment = config.EnvDevelopment
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting BizConsult at http://%s\n", cfg.Server.Addr())
	if srv.LiveReload() {
		fmt.Fprintln(cmd.OutOrStdout(), "Live reload enabled")
	}

	if err := srv.Start(ctx); err != nil {
		errors.NewErrorHandler(logger).Handle(ctx, err)
		if errors.HasCode(err, errors.ErrCodeServerStart) {
			suggestions := errors.ServerStartError(err, cfg.Server.Port, &errors.SuggestionContext{
				ConfigPath: viper.ConfigFileUsed(),
			})
			return errors.NewEnhancedError(
				fmt.Sprintf("Failed to start server on port %d", cfg.Server.Port),
				err,
				suggestions,
			)
		}
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
