package core

import (
	"errors"
	"testing"
)

// TestParseTarget verifies name resolution for the closed color set
func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Target
		wantErr bool
	}{
		{"Upper red", "RED", TargetRed, false},
		{"Lower green", "green", TargetGreen, false},
		{"Padded blue", "  Blue ", TargetBlue, false},
		{"Unknown", "PURPLE", DefaultTarget, true},
		{"Empty", "", DefaultTarget, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTarget) {
					t.Fatalf("Expected ErrUnknownTarget, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestTargetReference verifies ideal colors and the out-of-range fallback
func TestTargetReference(t *testing.T) {
	if got := TargetRed.Reference(); got != (RGB{220, 30, 30}) {
		t.Errorf("Expected red reference 220,30,30, got %v", got)
	}
	if got := TargetGreen.Reference(); got != (RGB{30, 220, 30}) {
		t.Errorf("Expected green reference 30,220,30, got %v", got)
	}
	if got := TargetBlue.Reference(); got != (RGB{30, 30, 220}) {
		t.Errorf("Expected blue reference 30,30,220, got %v", got)
	}

	invalid := Target(42)
	if invalid.Valid() {
		t.Fatal("Expected Target(42) to be invalid")
	}
	if got := invalid.Reference(); got != DefaultTarget.Reference() {
		t.Errorf("Expected fallback to default reference, got %v", got)
	}
	if _, _, _, ok := invalid.Channel(MeanRGB{}); ok {
		t.Error("Expected no channel mapping for invalid target")
	}
}

// TestTargetStrings verifies display names
func TestTargetStrings(t *testing.T) {
	want := []string{"RED", "GREEN", "BLUE"}
	for i, target := range Targets {
		if target.String() != want[i] {
			t.Errorf("Expected %s, got %s", want[i], target.String())
		}
	}
}
