package judge

import (
	"math"
	"testing"

	"github.com/lixenwraith/colorhunt/core"
)

// TestEvaluateExactReference verifies a perfect match scores 100 and passes
func TestEvaluateExactReference(t *testing.T) {
	for _, target := range core.Targets {
		acc, ok := Evaluate(target.Reference().Mean(), target)
		if acc != 100.0 {
			t.Errorf("%v: expected accuracy 100, got %f", target, acc)
		}
		if !ok {
			t.Errorf("%v: expected success for exact reference", target)
		}
	}
}

// TestAccuracySaturatesAtZero verifies distances beyond normalization clamp to 0
func TestAccuracySaturatesAtZero(t *testing.T) {
	for _, d := range []float64{350, 351, 400, 441.67} {
		if got := Accuracy(d); got != 0 {
			t.Errorf("Distance %f: expected accuracy 0, got %f", d, got)
		}
	}

	// White vs blue reference is well beyond 350
	acc, ok := Evaluate(core.MeanRGB{R: 255, G: 255, B: 0}, core.TargetBlue)
	if acc != 0 || ok {
		t.Errorf("Expected 0 and failure, got %f/%v", acc, ok)
	}
}

// TestAccuracyLinear verifies the linear mapping inside the range
func TestAccuracyLinear(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 100},
		{35, 90},
		{175, 50},
		{-10, 100}, // clamped
	}
	for _, tt := range tests {
		if got := Accuracy(tt.distance); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance %f: expected %f, got %f", tt.distance, tt.want, got)
		}
	}
}

// TestDominanceTolerance verifies the margin must exceed the tolerance on both channels
func TestDominanceTolerance(t *testing.T) {
	tests := []struct {
		name   string
		mean   core.MeanRGB
		target core.Target
		want   bool
	}{
		{"Red too close to green", core.MeanRGB{R: 200, G: 190, B: 100}, core.TargetRed, false},
		{"Clear red", core.MeanRGB{R: 220, G: 30, B: 30}, core.TargetRed, true},
		{"Margin equal to tolerance", core.MeanRGB{R: 125, G: 100, B: 0}, core.TargetRed, false},
		{"Margin just above tolerance", core.MeanRGB{R: 125.5, G: 100, B: 100}, core.TargetRed, true},
		{"Clear green", core.MeanRGB{R: 30, G: 220, B: 30}, core.TargetGreen, true},
		{"Green vs red target", core.MeanRGB{R: 30, G: 220, B: 30}, core.TargetRed, false},
		{"Clear blue", core.MeanRGB{R: 10, G: 60, B: 200}, core.TargetBlue, true},
		{"Grey", core.MeanRGB{R: 128, G: 128, B: 128}, core.TargetBlue, false},
		{"Invalid target", core.MeanRGB{R: 255}, core.Target(9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dominant(tt.mean, tt.target); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestDesaturatedCloseMatchRejected verifies accuracy alone does not pass a sample
func TestDesaturatedCloseMatchRejected(t *testing.T) {
	mean := core.MeanRGB{R: 150, G: 125, B: 30}
	v := Judge(mean, core.TargetRed)
	if v.Accuracy <= 65.0 {
		t.Fatalf("Expected accuracy above threshold, got %f", v.Accuracy)
	}
	if v.Dominant {
		t.Fatal("Expected red not dominant with 25 margin over green")
	}
	if v.Success {
		t.Error("Expected failure without dominance")
	}
}

// TestThresholdBoundary verifies samples just below the threshold fail and just above pass
func TestThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     bool
	}{
		{"Below", 64.9, false},
		{"Above", 65.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Offset along the blue axis only keeps dominance intact
			d := 350.0 * (1 - tt.accuracy/100)
			v := Judge(core.MeanRGB{R: 30, G: 30, B: 220 - d}, core.TargetBlue)
			if math.Abs(v.Accuracy-tt.accuracy) > 1e-6 {
				t.Fatalf("Expected accuracy %f, got %f", tt.accuracy, v.Accuracy)
			}
			if !v.Dominant {
				t.Fatal("Expected blue dominant")
			}
			if v.Success != tt.want {
				t.Errorf("Expected success %v, got %v", tt.want, v.Success)
			}
		})
	}
}

// TestDominantTarget verifies the dominant channel lookup
func TestDominantTarget(t *testing.T) {
	if got, ok := DominantTarget(core.MeanRGB{R: 10, G: 10, B: 90}); !ok || got != core.TargetBlue {
		t.Errorf("Expected blue, got %v/%v", got, ok)
	}
	if _, ok := DominantTarget(core.MeanRGB{R: 90, G: 80, B: 10}); ok {
		t.Error("Expected no dominant channel")
	}
}

// TestJudgeIsPure verifies repeated evaluation yields identical results
func TestJudgeIsPure(t *testing.T) {
	mean := core.MeanRGB{R: 180, G: 40, B: 60}
	first := Judge(mean, core.TargetRed)
	for i := 0; i < 10; i++ {
		if Judge(mean, core.TargetRed) != first {
			t.Fatal("Judge returned differing verdicts for identical input")
		}
	}
}
