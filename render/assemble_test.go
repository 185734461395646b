package render

import (
	"image"
	"strings"
	"testing"

	"github.com/lixenwraith/colorhunt/core"
)

func findLine(lines []TextLine, prefix string) (TextLine, bool) {
	for _, l := range lines {
		if strings.HasPrefix(l.Text, prefix) {
			return l, true
		}
	}
	return TextLine{}, false
}

// TestAnalyzingIntentHUD verifies HUD strings and accuracy emphasis
func TestAnalyzingIntentHUD(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	region := image.Rect(110, 70, 210, 170)

	in := AnalyzingIntent(frame, region, HUD{Target: core.TargetBlue, Score: 20, RemainingSeconds: 17, Accuracy: 42.3}, false)

	if in.Phase != core.PhaseAnalyzing {
		t.Errorf("Expected Analyzing, got %v", in.Phase)
	}
	if !in.HasBackdrop() {
		t.Error("Expected live backdrop")
	}
	for _, want := range []string{"TARGET: BLUE", "SCORE: 20", "TIME: 17", "Accuracy: %42.3"} {
		if _, ok := findLine(in.Lines, want); !ok {
			t.Errorf("Missing line %q", want)
		}
	}
	acc, _ := findLine(in.Lines, "Accuracy")
	if acc.Emphasis != EmphasisFail {
		t.Errorf("Expected fail emphasis, got %v", acc.Emphasis)
	}
	if in.Region == nil || in.Region.Rect != region || in.Region.Heavy {
		t.Errorf("Expected light region box at %v, got %+v", region, in.Region)
	}
	if _, ok := findLine(in.Lines, "EXCELLENT"); ok {
		t.Error("Unexpected success banner")
	}
}

// TestAnalyzingIntentSuccess verifies the accepted frame is highlighted
func TestAnalyzingIntentSuccess(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	in := AnalyzingIntent(frame, image.Rect(110, 70, 210, 170), HUD{Target: core.TargetRed, Accuracy: 99, Pass: true}, true)

	acc, _ := findLine(in.Lines, "Accuracy")
	if acc.Emphasis != EmphasisPass {
		t.Errorf("Expected pass emphasis, got %v", acc.Emphasis)
	}
	if !in.Region.Heavy || in.Region.Color != RgbRegionHit {
		t.Errorf("Expected heavy hit box, got %+v", in.Region)
	}
	if _, ok := findLine(in.Lines, "EXCELLENT!"); !ok {
		t.Error("Expected success banner")
	}
}

// TestFrozenIntentCountdownFloor verifies the countdown never goes negative
func TestFrozenIntentCountdownFloor(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	in := FrozenIntent(frame, frame.Bounds(), core.TargetGreen, 30, -2)

	if _, ok := findLine(in.Lines, "NEXT TARGET IN: 0"); !ok {
		t.Errorf("Expected countdown floored at 0, got %+v", in.Lines)
	}
	if _, ok := findLine(in.Lines, "COLOR ACCEPTED!"); !ok {
		t.Error("Expected accepted banner")
	}
	if in.Backdrop != frame {
		t.Error("Expected snapshot backdrop")
	}
}

// TestFlashingIntent verifies the announcement names the target on an opaque fill
func TestFlashingIntent(t *testing.T) {
	in := FlashingIntent(core.TargetRed, 10)
	if in.HasBackdrop() {
		t.Error("Expected no backdrop")
	}
	if in.Tint == nil || in.Tint.Alpha != 1 || in.Tint.Color != RgbFlashFill {
		t.Errorf("Expected opaque flash fill, got %+v", in.Tint)
	}
	if _, ok := findLine(in.Lines, "NEXT TASK:"); !ok {
		t.Error("Expected NEXT TASK line")
	}
	name, ok := findLine(in.Lines, "RED")
	if !ok || name.Emphasis != EmphasisTitle {
		t.Errorf("Expected title line naming RED, got %+v", name)
	}
}

// TestGameOverIntent verifies final score text
func TestGameOverIntent(t *testing.T) {
	in := GameOverIntent(70)
	if in.Phase != core.PhaseGameOver {
		t.Errorf("Expected GameOver, got %v", in.Phase)
	}
	if _, ok := findLine(in.Lines, "GAME OVER!"); !ok {
		t.Error("Expected GAME OVER line")
	}
	if _, ok := findLine(in.Lines, "TOTAL SCORE: 70"); !ok {
		t.Error("Expected total score line")
	}
	if IdleIntent().Idle != true {
		t.Error("Expected idle intent flagged")
	}
}
