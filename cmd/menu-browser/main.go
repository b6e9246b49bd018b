// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the menu-browser CLI. It keeps a
// local copy of a remote menu catalog and serves filtered, grouped
// views of it: sync populates the cache, search runs one-shot queries,
// browse drives an interactive session, export writes the catalog out.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/menu-browser/internal/secrets"
	"github.com/pdiddy/menu-browser/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultCatalogURL is the public sample catalog the browser syncs
// from when no source URL is configured.
const defaultCatalogURL = "https://raw.githubusercontent.com/Meta-Mobile-Developer-PC/Working-With-Data-API/main/menu-items-by-category.json"

// loadedCreds holds credentials loaded from .secrets/ at startup.
var loadedCreds secrets.Credentials

// logger is the process-wide zap logger, built in PersistentPreRunE.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "menu-browser",
	Short: "Offline-capable menu catalog browser",
	Long: `menu-browser fetches a remote menu catalog once, persists it in a local
SQLite database, and answers text and category filtered queries against that
cache. The remote source is never consulted again once the cache is populated.

Subcommands: sync populates or refreshes the local store, search runs a
one-shot filtered query, browse starts an interactive search session, and
export writes the grouped catalog to YAML or JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)

		creds, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedCreds = creds
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./menu-browser.yaml or ~/.config/menu-browser/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (overrides config)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("menu-browser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "menu-browser"))
		}
	}

	viper.SetDefault("source.url", defaultCatalogURL)
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.user_agent", "menu-browser/"+version)
	viper.SetDefault("source.max_retries", 3)
	viper.SetDefault("store.path", "menu.db")
	viper.SetDefault("browse.categories", types.DefaultCategories)
	viper.SetDefault("browse.debounce_interval", 500*time.Millisecond)

	viper.SetEnvPrefix("MENU_BROWSER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// browserConfig resolves the effective configuration from viper
// defaults, the config file, environment, and command flags.
func browserConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Source: types.SourceConfig{
			URL:        viper.GetString("source.url"),
			MaxRetries: viper.GetInt("source.max_retries"),
		},
		Store: types.StoreConfig{
			Path: viper.GetString("store.path"),
		},
		Browse: types.BrowseConfig{
			Categories:       viper.GetStringSlice("browse.categories"),
			DebounceInterval: viper.GetDuration("browse.debounce_interval"),
		},
	}
	cfg.Source.Timeout = viper.GetDuration("source.timeout")
	cfg.Source.UserAgent = viper.GetString("source.user_agent")

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.Path = db
	}
	return cfg
}

// catalogToken returns the bearer token for the catalog endpoint, if
// one was provided via .secrets/.
func catalogToken() string {
	return loadedCreds.CatalogToken
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
