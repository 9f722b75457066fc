//nolint:testpackage // Tests require internal access for thorough testing
package validate

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"20240115T103000Z", true},
		{"19700101T000000Z", true},
		{"99991231T235959Z", true},
		{"20240230T000000Z", true}, // not calendar aware
		{"19691231T235959Z", false},
		{"20241301T000000Z", false},
		{"20240100T000000Z", false},
		{"20240132T000000Z", false},
		{"20240115T240000Z", false},
		{"20240115T106000Z", false},
		{"20240115T100060Z", false},
		{"19791224T245051", false},
		{"20240115T103000", false},
		{" 20240115T103000Z", false},
		{"2024-01-15T10:30:00Z", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Date(tt.input); got != tt.valid {
				t.Errorf("Date(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"monthly", true},
		{"weekly", true},
		{"fortnight", true},
		{"sennight", true},
		{"weekdays", true},
		{"2w", true},
		{"3days", true},
		{"-1d", true},
		{"q", true},
		{"yrs", true},
		{"weakly", false},
		{"Monthly", false},
		{"12w", false},
		{"2", false},
		{"monthly ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Duration(tt.input); got != tt.valid {
				t.Errorf("Duration(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"-", true},
		{"----", true},
		{"+X-W", true},
		{"M", false},
		{"--x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Mask(tt.input); got != tt.valid {
				t.Errorf("Mask(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"L", true},
		{"M", true},
		{"H", true},
		{"A", false},
		{"h", false},
		{"HM", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Priority(tt.input); got != tt.valid {
				t.Errorf("Priority(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestFormatTimeIsValidDate(t *testing.T) {
	local := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2024, 1, 15, 15, 30, 0, 0, local)

	got := FormatTime(ts)
	if got != "20240115T103000Z" {
		t.Errorf("FormatTime() = %q, want %q", got, "20240115T103000Z")
	}
	if !Date(got) {
		t.Errorf("Date(FormatTime()) = false for %q", got)
	}
	// Re-validating a normalized value always succeeds.
	if !Date(FormatTime(time.Now())) {
		t.Error("FormatTime(time.Now()) should be a valid date")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) not found", name)
		}
	}
	if _, ok := Lookup("color"); ok {
		t.Error("Lookup(\"color\") should not be found")
	}

	fn, _ := Lookup("mask")
	if !fn("--") {
		t.Error("mask validator should accept \"--\"")
	}
}
