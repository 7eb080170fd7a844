// File: convert_test.go
// Title: Value Conversion Tests
// Description: Tests for ToString, As, Precise and ParsePrecise.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial tests

package stringx

import (
	"errors"
	"math"
	"testing"
	"time"

	wireerror "github.com/msto63/wire/core/error"
)

type celsius float64

func (c celsius) String() string { return ToString(float64(c)) + "°C" }

type label string

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Alice", "Alice"},
		{"bytes", []byte("raw"), "raw"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"negative int8", int8(-5), "-5"},
		{"int64", int64(-9007199254740993), "-9007199254740993"},
		{"uint8", uint8(200), "200"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64 short", 0.1, "0.1"},
		{"float64 integral", 3.0, "3"},
		{"float64 large", 1e21, "1e+21"},
		{"float32 short", float32(0.1), "0.1"},
		{"stringer", celsius(21.5), "21.5°C"},
		{"duration stringer", 1500 * time.Millisecond, "1.5s"},
		{"error", errors.New("boom"), "boom"},
		{"named string", label("x"), "x"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.want {
				t.Errorf("ToString(%#v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToStringFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0.1, 1.0 / 3.0, math.Pi, 1e-300, -2.5e17} {
		if got := As[float64](ToString(f)); got != f {
			t.Errorf("As(ToString(%v)) = %v", f, got)
		}
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{"-17", -17},
		{"  12px", 12},
		{"+8", 8},
		{"abc", 1},
		{"", 0},
		{"0", 0},
		{"false", 0},
		{"-", 1},
	}

	for _, tt := range tests {
		if got := As[int](tt.input); got != tt.want {
			t.Errorf("As[int](%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := As[bool](tt.input); got != tt.want {
			t.Errorf("As[bool](%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.5e2", 350},
		{"0.25", 0.25},
		{"-.5", -0.5},
		{"2.5kg", 2.5},
		{"0x1.8p+01", 3},
		{"word", 1},
		{"", 0},
	}

	for _, tt := range tests {
		if got := As[float64](tt.input); got != tt.want {
			t.Errorf("As[float64](%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if got := As[float32]("0.1"); got != float32(0.1) {
		t.Errorf("As[float32](0.1) = %v", got)
	}
	if !math.IsInf(As[float64]("INF"), 1) {
		t.Error("As[float64](INF) should be +Inf")
	}
}

func TestAsEightBit(t *testing.T) {
	if got := As[byte]("A"); got != 65 {
		t.Errorf("As[byte](A) = %d, want 65", got)
	}
	if got := As[int8]("7"); got != '7' {
		t.Errorf("As[int8](7) = %d, want %d", got, '7')
	}
	if got := As[uint8]("65"); got != 65 {
		t.Errorf("As[uint8](65) = %d, want 65", got)
	}
	if got := As[int16]("7"); got != 7 {
		t.Errorf("As[int16](7) = %d, want 7", got)
	}
}

func TestAsOtherKinds(t *testing.T) {
	if got := As[string]("  keep  "); got != "  keep  " {
		t.Errorf("As[string] = %q", got)
	}
	if got := As[label]("x"); got != label("x") {
		t.Errorf("As[label] = %q", got)
	}
	if got := As[uint64]("123"); got != 123 {
		t.Errorf("As[uint64](123) = %d", got)
	}
	if got := As[time.Duration]("1000"); got != time.Microsecond {
		t.Errorf("As[time.Duration](1000) = %v", got)
	}
}

func TestTruthy(t *testing.T) {
	for input, want := range map[string]bool{"": false, "0": false, "false": false, "no": true, "FALSE": true} {
		if got := Truthy(input); got != want {
			t.Errorf("Truthy(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPrecise(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{3, "0x1.8p+01"},
		{1, "0x1p+00"},
		{math.Inf(1), "INF"},
		{math.Inf(-1), "-INF"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		if got := Precise(tt.input); got != tt.want {
			t.Errorf("Precise(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPreciseRoundTrip(t *testing.T) {
	values := []float64{0, 0.1, -1.0 / 3.0, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}

	for _, f := range values {
		got, err := ParsePrecise(Precise(f))
		if err != nil {
			t.Fatalf("ParsePrecise(Precise(%v)) error = %v", f, err)
		}
		if got != f {
			t.Errorf("round trip of %v = %v (%s)", f, got, Precise(f))
		}
	}

	nan, err := ParsePrecise(Precise(math.NaN()))
	if err != nil || !math.IsNaN(nan) {
		t.Errorf("NaN round trip = %v, %v", nan, err)
	}
}

func TestParsePreciseError(t *testing.T) {
	_, err := ParsePrecise("not a float")
	if !wireerror.HasCode(err, wireerror.CodeConversionFailed) {
		t.Errorf("ParsePrecise() error = %v, want CONVERSION_FAILED", err)
	}
}
