// Package config provides configuration loading for wire.
//
// Package: config
// Title: wire Configuration Management
// Description: Loads TOML, YAML and INI configuration files into a
//              thread-safe Config with dot-notation access and environment
//              variable overrides. Also provides a standalone INI reader and
//              writer and re-encoding between the three formats.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: INI format, Encode, discovery of wire.* files
//
// Features:
// - TOML via github.com/BurntSushi/toml, YAML via gopkg.in/yaml.v3
// - INI with [section] headers and ';' comments
// - Environment overrides: key log.level with prefix WIRE reads WIRE_LOG_LEVEL
// - Typed getters with optional defaults
// - Conversion between formats with Encode
//
// Usage:
//   import wireconfig "github.com/msto63/wire/core/config"
//
//   cfg, err := wireconfig.LoadWithOptions("wire.ini", wireconfig.LoadOptions{
//     EnvPrefix: "WIRE",
//   })
//   if err != nil {
//     return err
//   }
//   level := cfg.GetString("log.level", "warn")
//
//   // Flat INI handling without a Config
//   values, err := wireconfig.ParseINI("[log]\r\nlevel=debug\r\n")
//   text := wireconfig.EncodeINI(values)
package config
