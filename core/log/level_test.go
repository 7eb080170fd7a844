// File: level_test.go
// Title: Log Level and Entry Tests
// Description: Tests for level parsing, filtering and the Fields helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Level and field tests

package log

import (
	"reflect"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"inf", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"ftl", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil || err.Error() != "invalid level: loud" {
		t.Errorf("ParseLevel error = %v", err)
	}
}

func TestLevelShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info")
	}
	if !LevelWarn.ShouldLog(LevelWarn) {
		t.Error("warn should log at warn")
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("LevelWarn strings = %q/%q", LevelWarn.String(), LevelWarn.ShortString())
	}
	if Level(42).String() != "unknown" || Level(42).ShortString() != "???" {
		t.Error("unknown levels should render as unknown/???")
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"a": 1, "b": 2}
	merged := base.Merge(Fields{"b": 3, "c": 4})

	want := Fields{"a": 1, "b": 3, "c": 4}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}
	if base["b"] != 2 {
		t.Error("Merge() should not modify the receiver")
	}
}

func TestFieldsKeysSorted(t *testing.T) {
	keys := Fields{"zeta": 1, "alpha": 2, "mid": 3}.Keys()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestFieldsCloneNil(t *testing.T) {
	var f Fields
	if f.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}
}
