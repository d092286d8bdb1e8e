package game

import (
	"fmt"
	"strings"
)

// Orientation is the logical orientation of the screen.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	Portrait
	PortraitUpsideDown
	LandscapeLeft
	LandscapeRight
	AutoRotation

	// Landscape is an alias of LandscapeLeft.
	Landscape = LandscapeLeft
)

var orientationNames = map[Orientation]string{
	OrientationUnknown: "unknown",
	Portrait:           "portrait",
	PortraitUpsideDown: "portraitUpsideDown",
	LandscapeLeft:      "landscapeLeft",
	LandscapeRight:     "landscapeRight",
	AutoRotation:       "autoRotation",
}

// String returns the config name of the orientation.
func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// IsLandscape reports whether the orientation is a landscape one.
func (o Orientation) IsLandscape() bool {
	return o == LandscapeLeft || o == LandscapeRight
}

// IsPortrait reports whether the orientation is a portrait one.
func (o Orientation) IsPortrait() bool {
	return o == Portrait || o == PortraitUpsideDown
}

// ParseOrientation parses a config name. "landscape" is accepted for
// LandscapeLeft.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "landscape") {
		return Landscape, nil
	}
	for o, name := range orientationNames {
		if strings.EqualFold(name, s) {
			return o, nil
		}
	}
	return OrientationUnknown, fmt.Errorf("unknown orientation: %q", s)
}

// Autorotation lists the orientations the display may rotate to while the
// orientation is AutoRotation.
type Autorotation struct {
	Portrait           bool
	PortraitUpsideDown bool
	LandscapeLeft      bool
	LandscapeRight     bool
}

// LandscapeOnly allows rotating between the two landscape orientations.
func LandscapeOnly() Autorotation {
	return Autorotation{LandscapeLeft: true, LandscapeRight: true}
}

// Allows reports whether o is an allowed autorotation target.
func (a Autorotation) Allows(o Orientation) bool {
	switch o {
	case Portrait:
		return a.Portrait
	case PortraitUpsideDown:
		return a.PortraitUpsideDown
	case LandscapeLeft:
		return a.LandscapeLeft
	case LandscapeRight:
		return a.LandscapeRight
	default:
		return false
	}
}

// Display is the host window or device screen.
type Display interface {
	// Size returns the output size in pixels.
	Size() (width, height int)
	// DPI returns the screen DPI, 0 when unknown.
	DPI() float64
	// DisplaySizes returns the rendering size of each connected display.
	DisplaySizes() [][2]int

	Orientation() Orientation
	// SetOrientation requests a new orientation for a layout of the given
	// resolution.
	SetOrientation(o Orientation, width, height int)
	SetAutorotation(a Autorotation)
}
