// Package cmd provides the command-line interface for the BizConsult site
// with configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --port, etc.) - highest priority
//	2. BIZCONSULT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (BIZCONSULT_SERVER_PORT, etc.)
//	4. Configuration files (.bizconsult.yml) - lowest priority
//
// Environment Variables:
//
//	BIZCONSULT_CONFIG_FILE: Path to custom configuration file
//	BIZCONSULT_SERVER_PORT: Override server port
//	BIZCONSULT_SERVER_HOST: Override server host
//	BIZCONSULT_SITE_LANG: Override the page language
//	And more following the BIZCONSULT_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/bizconsult/internal/config"
	"github.com/conneroisu/bizconsult/internal/errors"
	"github.com/conneroisu/bizconsult/internal/logging"
)

const defaultConfigName = ".bizconsult.yml"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bizconsult",
	Short: "Serve and inspect the BizConsult landing page",
	Long: `BizConsult serves the company landing page together with its contact
form, and ships the tooling used to check the page before it goes out.

Quick Start:
  bizconsult serve                 Start the site on localhost:8080
  bizconsult serve --hot-reload    Start in development with live reload
  bizconsult render --out page.html
  bizconsult validate --name Иван --email ivan@example.com ...
  bizconsult doctor                Check the rendered page structure

Command Aliases (for faster typing):
  serve (s), render (r), content (c)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Failures are printed with their fix-it suggestions.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", errors.FormatErrorWithSuggestions(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bizconsult.yml, can also use BIZCONSULT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig wires the config file and the BIZCONSULT_ environment into
// the global viper instance.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag
//  2. BIZCONSULT_CONFIG_FILE environment variable
//  3. .bizconsult.yml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("BIZCONSULT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bizconsult")
	}

	viper.SetEnvPrefix("BIZCONSULT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable file falls back to defaults; config.Load
	// still validates whatever is set.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads the configuration and turns failures into an error
// with fix-it suggestions.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			configPath = defaultConfigName
		}
		suggestions := errors.ConfigurationError(err.Error(), &errors.SuggestionContext{
			ConfigPath: configPath,
			AssetsDir:  viper.GetString("site.assets_dir"),
		})
		return nil, errors.NewEnhancedError(
			"Failed to load configuration",
			errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid configuration in "+configPath),
			suggestions,
		)
	}
	return cfg, nil
}

// newLogger builds the command logger from the loaded log settings.
func newLogger(cmd *cobra.Command, cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.FromSettings(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return logger, nil
}
