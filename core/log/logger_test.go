// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutability of With* calls,
//              level filtering and wire error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Tests for the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	wireerror "github.com/msto63/wire/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	return logger, &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithMethodsReturnCopies(t *testing.T) {
	logger := New()

	tests := []struct {
		name string
		fn   func(*Logger) *Logger
	}{
		{"WithLevel", func(l *Logger) *Logger { return l.WithLevel(LevelDebug) }},
		{"WithFormat", func(l *Logger) *Logger { return l.WithFormat(FormatJSON) }},
		{"WithName", func(l *Logger) *Logger { return l.WithName("x") }},
		{"WithField", func(l *Logger) *Logger { return l.WithField("k", "v") }},
		{"WithFields", func(l *Logger) *Logger { return l.WithFields(Fields{"a": 1}) }},
		{"WithCaller", func(l *Logger) *Logger { return l.WithCaller(0) }},
		{"WithOutput", func(l *Logger) *Logger { return l.WithOutput(&bytes.Buffer{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied := tt.fn(logger)
			if copied == logger {
				t.Errorf("%s() should return a new logger instance", tt.name)
			}
		})
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("With* calls should not modify the original logger")
	}
	if len(logger.contextFields) != 0 {
		t.Error("With* calls should not add fields to the original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")
	logger.Error("shown as well")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be filtered, got %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestLoggerContextFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger = logger.WithName("interp").WithField("template", "t1")

	logger.Debug("resolved", Fields{"name": "user"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}

	want := map[string]string{
		"logger":   "interp",
		"template": "t1",
		"name":     "user",
		"message":  "resolved",
		"level":    "debug",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("data[%q] = %v, want %v", k, data[k], v)
		}
	}
}

func TestLoggerWithOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &first})
	redirected := logger.WithOutput(&second)

	redirected.Warn("to second")
	if first.Len() != 0 {
		t.Errorf("original output written: %q", first.String())
	}
	if !strings.Contains(second.String(), "to second") {
		t.Errorf("redirected output = %q", second.String())
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})
	clone := logger.WithName("clone")

	logger.Trace("hidden")
	if buf.Len() != 0 {
		t.Fatalf("trace written at warn level: %q", buf.String())
	}

	logger.SetLevel(LevelTrace)
	logger.Trace("shown")
	if !strings.Contains(buf.String(), "[TRC] shown") {
		t.Errorf("trace entry missing, got %q", buf.String())
	}
	if clone.GetLevel() != LevelWarn {
		t.Errorf("SetLevel changed a clone: %v", clone.GetLevel())
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.ErrorWithErr("load failed", errors.New("boom"))

	if !strings.Contains(buf.String(), `error="boom"`) {
		t.Errorf("expected error in output, got %q", buf.String())
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "low severity logs at info",
			err:       wireerror.New("bad input").WithCode(wireerror.CodeInvalidInput),
			wantLevel: "info",
		},
		{
			name:      "high severity logs at error",
			err:       wireerror.New("loop").WithCode(wireerror.CodeCyclicReference),
			wantLevel: "error",
		},
		{
			name:      "critical severity logs at error",
			err:       wireerror.New("broken").WithCode(wireerror.CodeInternal),
			wantLevel: "error",
		},
		{
			name:      "medium severity logs at warn",
			err:       wireerror.New("lookup").WithCode(wireerror.CodeLookupFailed),
			wantLevel: "warn",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLoggerLogErrorDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)

	err := wireerror.New("unknown symbol").
		WithCode(wireerror.CodeLookupFailed).
		WithOperation("interpx.Interpolate").
		WithDetail("name", "user")
	logger.LogError(err)

	var data map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &data); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v", jsonErr)
	}

	if data["error_code"] != "LOOKUP_FAILED" {
		t.Errorf("error_code = %v", data["error_code"])
	}
	if data["error_operation"] != "interpx.Interpolate" {
		t.Errorf("error_operation = %v", data["error_operation"])
	}
	if data["error_name"] != "user" {
		t.Errorf("error_name = %v", data["error_name"])
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should not write, got %q", buf.String())
	}
}

func TestLoggerWithCaller(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithCaller(0)

	logger.Info("with caller")

	if !strings.Contains(buf.String(), "logger_test.go") {
		t.Errorf("expected caller file in output, got %q", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelInfo, FormatText)
	SetDefault(logger)

	Info("through default")
	GetDefault().Debug("filtered")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("expected message through default logger, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "filtered") {
		t.Errorf("debug message should be filtered, got %q", buf.String())
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelInfo)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func BenchmarkLoggerFiltered(b *testing.B) {
	logger, _ := newBufferLogger(LevelWarn, FormatJSON)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("filtered", Fields{"i": i})
	}
}

func BenchmarkLoggerText(b *testing.B) {
	logger, _ := newBufferLogger(LevelInfo, FormatText)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("message", Fields{"i": i})
	}
}
