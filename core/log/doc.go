// Package log provides structured logging for the wire packages and CLI.
//
// Package: log
// Title: wire Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              four output formats (JSON, text, logfmt and a lipgloss-colored
//              console format) and a LogError helper that maps the severity
//              of a wire error onto a log level.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Logging for string utilities and the wire command
//
// Features:
// - Levels trace, debug, info, warn, error and fatal
// - Immutable loggers; With* calls return configured copies
// - Deterministic field order in text, console and logfmt output
// - Severity-aware logging of wire errors
//
// Usage:
//   import wirelog "github.com/msto63/wire/core/log"
//
//   logger := wirelog.New().
//     WithLevel(wirelog.LevelDebug).
//     WithFormat(wirelog.FormatText).
//     WithName("interp")
//
//   logger.Debug("configuration loaded", wirelog.Fields{
//     "path": "wire.toml",
//   })
//
//   if err != nil {
//     logger.LogError(err)
//   }
package log
