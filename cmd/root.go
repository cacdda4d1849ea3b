package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/internal/catalog"
	"github.com/rxhost/catalogctl/internal/config"
	"github.com/rxhost/catalogctl/internal/lint"
)

const version = "0.3.0"

var (
	configPath string
	rootOver   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "catalog.hcl", "Path to catalog config")
	rootCmd.PersistentFlags().StringVarP(&rootOver, "root", "r", "", "Catalog root directory (overrides config)")
}

var rootCmd = &cobra.Command{
	Use:          "catalogctl",
	Short:        "catalogctl checks and packages the rx component catalog",
	Version:      version,
	SilenceUsage: true,
}

// loadConfig resolves catalog.hcl plus flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if rootOver != "" {
		cfg.Root = rootOver
	}
	return cfg, nil
}

// newLoader opens the catalog root. A missing directory is a hard failure
// before any document is read.
func newLoader(cfg config.Config) (*catalog.Loader, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("catalog directory %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog root %s is not a directory", cfg.Root)
	}
	l := catalog.NewLoader(osfs.New(cfg.Root))
	l.IndexName = cfg.Index
	return l, nil
}

func lintOptions(cfg config.Config) lint.Options {
	return lint.Options{
		StrictUndeclared: cfg.StrictUndeclared,
		RequiredFields:   cfg.RequiredFields,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
