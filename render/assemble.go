package render

import (
	"fmt"
	"image"
	"strconv"

	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
)

// HUD carries the values shown while analyzing
type HUD struct {
	Target           core.Target
	Score            int
	RemainingSeconds int
	Accuracy         float64
	Pass             bool
}

// hudLines builds the corner overlay shared by live and success frames
func hudLines(h HUD) []TextLine {
	accuracy := EmphasisFail
	if h.Pass {
		accuracy = EmphasisPass
	}
	return []TextLine{
		{Text: constants.TextTargetPrefix + h.Target.String(), Anchor: AnchorTopLeft, Row: 0, Color: TargetDisplayColor(h.Target)},
		{Text: constants.TextScorePrefix + strconv.Itoa(h.Score), Anchor: AnchorTopLeft, Row: 1, Color: RgbScore},
		{Text: constants.TextTimePrefix + strconv.Itoa(h.RemainingSeconds), Anchor: AnchorTopRight, Row: 0, Color: RgbTimer},
		{Text: fmt.Sprintf(constants.TextAccuracyFormat, h.Accuracy), Anchor: AnchorBottomLeft, Row: 0, Emphasis: accuracy},
	}
}

// AnalyzingIntent describes a live frame with the HUD and sampling box
// success marks the frame that was just accepted
func AnalyzingIntent(frame image.Image, region image.Rectangle, h HUD, success bool) Intent {
	box := &Box{Rect: region, Color: RgbRegion}
	lines := hudLines(h)
	if success {
		box.Color = RgbRegionHit
		box.Heavy = true
		lines = append(lines, TextLine{Text: constants.TextExcellent, Anchor: AnchorCenter, Row: 2, Emphasis: EmphasisPass})
	}
	return Intent{
		Phase:            core.PhaseAnalyzing,
		Backdrop:         frame,
		FrameBounds:      frame.Bounds(),
		Region:           box,
		Lines:            lines,
		Target:           h.Target,
		Score:            h.Score,
		RemainingSeconds: h.RemainingSeconds,
		Accuracy:         h.Accuracy,
		Pass:             h.Pass,
	}
}

// FrozenIntent describes the held success frame with the next-target countdown
func FrozenIntent(snapshot image.Image, region image.Rectangle, target core.Target, score, countdown int) Intent {
	if countdown < 0 {
		countdown = 0
	}
	var bounds image.Rectangle
	if snapshot != nil {
		bounds = snapshot.Bounds()
	}
	return Intent{
		Phase:       core.PhaseFrozen,
		Backdrop:    snapshot,
		FrameBounds: bounds,
		Region:      &Box{Rect: region, Color: RgbRegionHit, Heavy: true},
		Tint:        &Tint{Color: RgbFrozenDim, Alpha: 0.35},
		Lines: []TextLine{
			{Text: constants.TextAccepted, Anchor: AnchorCenter, Row: -1, Emphasis: EmphasisPass},
			{Text: constants.TextNextTargetIn + strconv.Itoa(countdown), Anchor: AnchorCenter, Row: 1, Color: RgbHUDText},
		},
		Target: target,
		Score:  score,
		Pass:   true,
	}
}

// FlashingIntent describes the next-target announcement screen
func FlashingIntent(target core.Target, score int) Intent {
	return Intent{
		Phase: core.PhaseFlashing,
		Tint:  &Tint{Color: RgbFlashFill, Alpha: 1},
		Lines: []TextLine{
			{Text: constants.TextNextTask, Anchor: AnchorCenter, Row: -2, Color: RgbHUDText},
			{Text: target.String(), Anchor: AnchorCenter, Row: 1, Color: TargetDisplayColor(target), Emphasis: EmphasisTitle},
		},
		Target: target,
		Score:  score,
	}
}

// GameOverIntent describes the final score screen
func GameOverIntent(score int) Intent {
	return Intent{
		Phase: core.PhaseGameOver,
		Tint:  &Tint{Color: RgbGameOver, Alpha: 1},
		Lines: []TextLine{
			{Text: constants.TextGameOver, Anchor: AnchorCenter, Row: -1, Color: RgbTitle, Emphasis: EmphasisTitle},
			{Text: constants.TextTotalScore + strconv.Itoa(score), Anchor: AnchorCenter, Row: 1, Color: RgbHUDText},
			{Text: constants.TextRestartHint, Anchor: AnchorBottomLeft, Row: 0, Color: RgbStatusDebug},
		},
		Score: score,
	}
}

// IdleIntent describes the screen before a session starts
func IdleIntent() Intent {
	return Intent{
		Idle:  true,
		Phase: core.PhaseGameOver,
		Tint:  &Tint{Color: RgbBackground, Alpha: 1},
		Lines: []TextLine{
			{Text: constants.TextPressStart, Anchor: AnchorCenter, Row: 0, Color: RgbTitle, Emphasis: EmphasisTitle},
		},
	}
}
