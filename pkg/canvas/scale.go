// Package canvas computes UI canvas scale factors.
//
// A canvas is authored against a reference resolution. At runtime the scale
// factor maps reference units onto the screen's pixel grid under one of the
// ScaleMode policies. The functions in this file are pure; Scaler applies
// their results to a Surface.
package canvas

import (
	"math"

	"github.com/decker502/fullhouse/pkg/utils"
)

const (
	// MinimumResolution is the smallest magnitude a resolution component may have.
	MinimumResolution = 0.00001

	// MinimumScaleFactor is the smallest configured constant scale factor.
	MinimumScaleFactor = 0.01

	// logBase has no influence on the result as long as it is used everywhere.
	logBase = 2
)

// ClampResolution keeps both components at least MinimumResolution away from
// zero. A negative component stays negative; zero of either sign becomes
// positive.
func ClampResolution(v utils.Vec2) utils.Vec2 {
	return utils.Vec2{X: clampComponent(v.X), Y: clampComponent(v.Y)}
}

func clampComponent(x float64) float64 {
	if x > -MinimumResolution && x < MinimumResolution {
		if x < 0 {
			return -MinimumResolution
		}
		return MinimumResolution
	}
	return x
}

// ComputeScaleFactor returns the factor that maps reference units onto a
// screen of the given size.
//
//   - MatchWidthOrHeight: the width and height ratios are averaged in log space,
//     weighted by match (0 = width, 1 = height, clamped to [0, 1]). With match 0.5, twice the width
//     and half the height even out to exactly 1.
//   - Expand: the smaller ratio, the canvas is never smaller than the reference.
//   - Shrink: the larger ratio, the canvas is never larger than the reference.
func ComputeScaleFactor(screen, reference utils.Vec2, mode ScreenMatchMode, match float64) float64 {
	screen = ClampResolution(screen)
	reference = ClampResolution(reference)

	widthRatio := screen.X / reference.X
	heightRatio := screen.Y / reference.Y

	switch mode {
	case Expand:
		return math.Min(widthRatio, heightRatio)
	case Shrink:
		return math.Max(widthRatio, heightRatio)
	default:
		logWidth := math.Log2(widthRatio)
		logHeight := math.Log2(heightRatio)
		return math.Pow(logBase, utils.Lerp(logWidth, logHeight, utils.Clamp01(match)))
	}
}

// UnitDPI returns how many of the unit fit into one inch.
func UnitDPI(unit Unit) float64 {
	switch unit {
	case Centimeters:
		return 2.54
	case Millimeters:
		return 25.4
	case Inches:
		return 1
	case Points:
		return 72
	case Picas:
		return 6
	default:
		return 1
	}
}

// PhysicalScaleFactor returns the scale factor for the constant physical size
// mode. A dpi of 0 means the host could not report one; fallbackDPI is used.
func PhysicalScaleFactor(dpi, fallbackDPI float64, unit Unit) float64 {
	if dpi == 0 {
		dpi = fallbackDPI
	}
	return dpi / UnitDPI(unit)
}

// PhysicalPixelsPerUnit returns the reference pixels per unit for the constant
// physical size mode.
func PhysicalPixelsPerUnit(referencePPU, defaultSpriteDPI float64, unit Unit) float64 {
	return referencePPU * UnitDPI(unit) / defaultSpriteDPI
}
