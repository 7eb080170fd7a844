// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the wire configuration file in the working directory
//              or the user configuration directory, trying every supported
//              extension, so the CLI works without an explicit --config.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Discovery of wire.{toml,yaml,yml,ini}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wireerror "github.com/msto63/wire/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations of the wire command
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "wire"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"wire"},
		Extensions: []string{".toml", ".yaml", ".yml", ".ini"},
		EnvPrefix:  "WIRE",
		Required:   false,
	}
}

// Discover finds and loads the first configuration file matching options.
// When nothing is found and the file is not required, an empty
// configuration backed only by the environment is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required && wireerror.HasCode(err, wireerror.CodeNotFound) {
			return New(options.EnvPrefix), nil
		}
		return nil, err
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, wireerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"wire"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml", ".ini"}
	}

	searched := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(path, filename+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, nil
				}
				searched = append(searched, candidate)
			}
		}
	}

	return "", wireerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
		WithCode(wireerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", searched)
}
