package app

import (
	"log"
	"math"

	"github.com/decker502/fullhouse/pkg/game"
	"github.com/decker502/fullhouse/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenDisplay implements game.Display on top of the Ebitengine window.
//
// Desktop windows cannot rotate: an orientation change resizes the window to
// the scene resolution times windowScale. On mobile the OS owns rotation and
// the request is only recorded.
type ebitenDisplay struct {
	orientation  game.Orientation
	autorotation game.Autorotation
	windowScale  float64

	outsideWidth, outsideHeight int
	deviceScale                 float64

	// 测试中替换
	resize     func(width, height int)
	fullscreen func() bool
	mobile     func() bool
}

func newEbitenDisplay(windowScale float64, initial game.Orientation) *ebitenDisplay {
	return &ebitenDisplay{
		orientation: initial,
		windowScale: windowScale,
		deviceScale: 1,
		resize:      ebiten.SetWindowSize,
		fullscreen:  ebiten.IsFullscreen,
		mobile:      utils.IsMobile,
	}
}

// setOutsideSize records the size passed to Layout, in device independent pixels.
func (d *ebitenDisplay) setOutsideSize(width, height int, deviceScale float64) {
	d.outsideWidth, d.outsideHeight = width, height
	if deviceScale > 0 {
		d.deviceScale = deviceScale
	}
}

// Size returns the output size in physical pixels.
func (d *ebitenDisplay) Size() (int, int) {
	w, h := d.outsideWidth, d.outsideHeight
	if w <= 0 || h <= 0 {
		w, h = ebiten.WindowSize()
	}
	return int(math.Ceil(float64(w) * d.deviceScale)), int(math.Ceil(float64(h) * d.deviceScale))
}

func (d *ebitenDisplay) DPI() float64 {
	return utils.ScreenDPI(d.deviceScale)
}

// DisplaySizes reports only the main display, Ebitengine renders to one.
func (d *ebitenDisplay) DisplaySizes() [][2]int {
	w, h := d.Size()
	return [][2]int{{w, h}}
}

func (d *ebitenDisplay) Orientation() game.Orientation {
	return d.orientation
}

func (d *ebitenDisplay) SetOrientation(o game.Orientation, width, height int) {
	prev := d.orientation
	d.orientation = o
	log.Printf("[Display] Orientation %v -> %v (%dx%d)", prev, o, width, height)

	if o == game.AutoRotation || o == game.OrientationUnknown {
		return
	}
	if d.mobile() || d.fullscreen() {
		return
	}
	d.resize(d.windowSize(width, height))
}

func (d *ebitenDisplay) SetAutorotation(a game.Autorotation) {
	d.autorotation = a
}

// windowSize returns the desktop window size for a scene resolution.
func (d *ebitenDisplay) windowSize(width, height int) (int, int) {
	scale := d.windowScale
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(width) * scale)), int(math.Round(float64(height) * scale))
}
