// Package config loads the optional catalog.hcl file controlling where the
// catalog lives and how strictly it is validated.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the decoded catalog.hcl. Every attribute is optional; absent
// attributes keep their defaults.
type Config struct {
	// Root is the catalog directory, relative to the working directory.
	Root string `hcl:"root,optional"`
	// Index is the manifest file name inside Root.
	Index string `hcl:"index,optional"`
	// StrictUndeclared turns undeclared-but-present files into errors.
	StrictUndeclared bool `hcl:"strict_undeclared,optional"`
	// RequiredFields overrides the selectors every non-topic component
	// must resolve.
	RequiredFields []string `hcl:"required_fields,optional"`
}

// Default returns the configuration used when no catalog.hcl exists.
func Default() Config {
	return Config{
		Root:  "catalog",
		Index: "index.json",
	}
}

// Load reads the config file at path. A missing file is not an error and
// yields Default(); a present but undecodable file is fatal.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "catalog"
	}
	if cfg.Index == "" {
		cfg.Index = "index.json"
	}
	return cfg, nil
}
