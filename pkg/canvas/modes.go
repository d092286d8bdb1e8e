package canvas

import (
	"fmt"
	"strings"
)

// ScaleMode determines how UI elements in a canvas are scaled.
type ScaleMode int

const (
	// ConstantPixelSize keeps UI sizes in screen pixels times a fixed factor.
	ConstantPixelSize ScaleMode = iota
	// ScaleWithScreenSize scales from a reference resolution to the screen.
	ScaleWithScreenSize
	// ConstantPhysicalSize keeps UI sizes in physical units using the screen DPI.
	ConstantPhysicalSize
)

// ScreenMatchMode resolves aspect ratio mismatch between the reference
// resolution and the screen.
type ScreenMatchMode int

const (
	// MatchWidthOrHeight blends width and height ratios in log space.
	MatchWidthOrHeight ScreenMatchMode = iota
	// Expand never lets the canvas get smaller than the reference.
	Expand
	// Shrink never lets the canvas get larger than the reference.
	Shrink
)

// WorldSpaceScaleMode determines scaling for world-space canvases.
type WorldSpaceScaleMode int

const (
	DoNotUseScale WorldSpaceScaleMode = iota
	WorldScaleWithScreenSize
)

// RenderMode is where a canvas is rendered.
type RenderMode int

const (
	ScreenSpaceOverlay RenderMode = iota
	ScreenSpaceCamera
	WorldSpace
)

// Unit is a physical length unit.
type Unit int

const (
	Centimeters Unit = iota
	Millimeters
	Inches
	Points
	Picas
)

var scaleModeNames = map[ScaleMode]string{
	ConstantPixelSize:    "constantPixelSize",
	ScaleWithScreenSize:  "scaleWithScreenSize",
	ConstantPhysicalSize: "constantPhysicalSize",
}

var matchModeNames = map[ScreenMatchMode]string{
	MatchWidthOrHeight: "matchWidthOrHeight",
	Expand:             "expand",
	Shrink:             "shrink",
}

var worldModeNames = map[WorldSpaceScaleMode]string{
	DoNotUseScale:            "doNotUseScale",
	WorldScaleWithScreenSize: "scaleWithScreenSize",
}

var renderModeNames = map[RenderMode]string{
	ScreenSpaceOverlay: "screenSpaceOverlay",
	ScreenSpaceCamera:  "screenSpaceCamera",
	WorldSpace:         "worldSpace",
}

var unitNames = map[Unit]string{
	Centimeters: "centimeters",
	Millimeters: "millimeters",
	Inches:      "inches",
	Points:      "points",
	Picas:       "picas",
}

func (m ScaleMode) String() string           { return nameOf(scaleModeNames, m) }
func (m ScreenMatchMode) String() string     { return nameOf(matchModeNames, m) }
func (m WorldSpaceScaleMode) String() string { return nameOf(worldModeNames, m) }
func (m RenderMode) String() string          { return nameOf(renderModeNames, m) }
func (u Unit) String() string                { return nameOf(unitNames, u) }

// ParseScaleMode parses a config name, case-insensitively.
func ParseScaleMode(s string) (ScaleMode, error) { return parseName(scaleModeNames, "scale mode", s) }

// ParseScreenMatchMode parses a config name, case-insensitively.
func ParseScreenMatchMode(s string) (ScreenMatchMode, error) {
	return parseName(matchModeNames, "screen match mode", s)
}

// ParseWorldSpaceScaleMode parses a config name, case-insensitively.
func ParseWorldSpaceScaleMode(s string) (WorldSpaceScaleMode, error) {
	return parseName(worldModeNames, "world space scale mode", s)
}

// ParseRenderMode parses a config name, case-insensitively.
func ParseRenderMode(s string) (RenderMode, error) { return parseName(renderModeNames, "render mode", s) }

// ParseUnit parses a config name, case-insensitively.
func ParseUnit(s string) (Unit, error) { return parseName(unitNames, "unit", s) }

func nameOf[K ~int](names map[K]string, k K) string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("%d", k)
}

func parseName[K ~int](names map[K]string, kind, s string) (K, error) {
	for k, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	var zero K
	return zero, fmt.Errorf("unknown %s: %q", kind, s)
}
