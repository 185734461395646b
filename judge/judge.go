// Package judge scores a sampled color against a target color.
// Everything here is pure: no state, no clock, no drawing.
package judge

import (
	"math"

	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
)

// Verdict is the judged outcome for one sample
type Verdict struct {
	Mean     core.MeanRGB
	Distance float64
	Accuracy float64 // 0..100
	Dominant bool
	Success  bool
}

// Evaluate returns accuracy in [0,100] and whether the sample passes for target
func Evaluate(mean core.MeanRGB, target core.Target) (accuracy float64, success bool) {
	v := Judge(mean, target)
	return v.Accuracy, v.Success
}

// Judge computes the full verdict for a sample
func Judge(mean core.MeanRGB, target core.Target) Verdict {
	d := Distance(mean, target.Reference().Mean())
	acc := Accuracy(d)
	dom := Dominant(mean, target)
	return Verdict{
		Mean:     mean,
		Distance: d,
		Accuracy: acc,
		Dominant: dom,
		Success:  acc > constants.AccuracyThreshold && dom,
	}
}

// Distance is the Euclidean distance in RGB space
func Distance(a, b core.MeanRGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Accuracy maps a distance to a percentage, saturating at 0 beyond the normalization constant
func Accuracy(distance float64) float64 {
	acc := 100.0 * (1.0 - distance/constants.AccuracyNormalization)
	return math.Max(0, math.Min(100, acc))
}

// Dominant reports whether the target's channel exceeds both other channels by more than the tolerance
// Rejects greyish samples that sit close to a reference purely by distance
func Dominant(mean core.MeanRGB, target core.Target) bool {
	own, o1, o2, ok := target.Channel(mean)
	if !ok {
		return false
	}
	tol := constants.DominanceTolerance
	return own > o1+tol && own > o2+tol
}

// DominantTarget returns the channel that dominates the sample, if any
func DominantTarget(mean core.MeanRGB) (core.Target, bool) {
	for _, t := range core.Targets {
		if Dominant(mean, t) {
			return t, true
		}
	}
	return core.DefaultTarget, false
}
