package constants

// Color Judge Constants
const (
	// AccuracyThreshold must be strictly exceeded for a sample to pass
	AccuracyThreshold = 65.0

	// AccuracyNormalization is the RGB distance at which accuracy reaches 0
	// Calibrated for 0-255 channels, not a physical bound
	AccuracyNormalization = 350.0

	// DominanceTolerance is the margin a channel needs over both others
	DominanceTolerance = 25.0
)

// Sampling Region Constants
const (
	// RegionHalfSize is half the side of the square sampling region in pixels
	RegionHalfSize = 50
)
