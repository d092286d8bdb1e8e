package canvas

import (
	"github.com/decker502/fullhouse/pkg/camera"
	"github.com/decker502/fullhouse/pkg/utils"
)

const (
	// DefaultScaleFactor is the scale of a canvas no scaler has written to.
	DefaultScaleFactor = 1.0
	// DefaultReferencePixelsPerUnit is the sprite pixels per UI unit by default.
	DefaultReferencePixelsPerUnit = 100.0
)

// Surface receives the values a Scaler computes.
type Surface interface {
	IsRoot() bool
	RenderMode() RenderMode
	TargetDisplay() int
	WorldCamera() *camera.Camera
	Position() utils.Vec3

	SetScaleFactor(scaleFactor float64)
	SetReferencePixelsPerUnit(ppu float64)
	SetSizeDelta(size utils.Vec2)
	SetLocalScale(scale float64)
}

// Canvas is a UI render target. It is the Surface used by the scenes.
type Canvas struct {
	Name string

	mode          RenderMode
	root          bool
	targetDisplay int
	worldCamera   *camera.Camera
	position      utils.Vec3

	scaleFactor            float64
	referencePixelsPerUnit float64
	sizeDelta              utils.Vec2
	localScale             float64

	// 每次有效写入递增，渲染层据此判断是否需要重新布局
	version uint64
}

// New creates a root canvas with the given render mode.
func New(name string, mode RenderMode) *Canvas {
	return &Canvas{
		Name:                   name,
		mode:                   mode,
		root:                   true,
		scaleFactor:            DefaultScaleFactor,
		referencePixelsPerUnit: DefaultReferencePixelsPerUnit,
		localScale:             1,
	}
}

func (c *Canvas) IsRoot() bool                { return c.root }
func (c *Canvas) RenderMode() RenderMode      { return c.mode }
func (c *Canvas) TargetDisplay() int          { return c.targetDisplay }
func (c *Canvas) WorldCamera() *camera.Camera { return c.worldCamera }
func (c *Canvas) Position() utils.Vec3        { return c.position }

// SetRoot marks the canvas as nested (false) or root (true).
// Nested canvases inherit their parent's scale and are skipped by scalers.
func (c *Canvas) SetRoot(root bool) { c.root = root }

// SetRenderMode changes where the canvas is rendered.
func (c *Canvas) SetRenderMode(mode RenderMode) { c.mode = mode }

// SetTargetDisplay selects the display index the canvas renders to.
func (c *Canvas) SetTargetDisplay(index int) { c.targetDisplay = index }

// SetWorldCamera sets the camera used by camera and world space canvases.
func (c *Canvas) SetWorldCamera(cam *camera.Camera) { c.worldCamera = cam }

// SetPosition sets the world position of a world space canvas.
func (c *Canvas) SetPosition(p utils.Vec3) { c.position = p }

func (c *Canvas) SetScaleFactor(scaleFactor float64) {
	c.scaleFactor = scaleFactor
	c.version++
}

func (c *Canvas) SetReferencePixelsPerUnit(ppu float64) {
	c.referencePixelsPerUnit = ppu
	c.version++
}

func (c *Canvas) SetSizeDelta(size utils.Vec2) { c.sizeDelta = size }
func (c *Canvas) SetLocalScale(scale float64)  { c.localScale = scale }

func (c *Canvas) ScaleFactor() float64            { return c.scaleFactor }
func (c *Canvas) ReferencePixelsPerUnit() float64 { return c.referencePixelsPerUnit }
func (c *Canvas) SizeDelta() utils.Vec2           { return c.sizeDelta }
func (c *Canvas) LocalScale() float64             { return c.localScale }

// Version counts scale factor and reference pixels per unit writes.
func (c *Canvas) Version() uint64 { return c.version }

// LogicalSize returns the canvas size in UI units for a screen in pixels.
func (c *Canvas) LogicalSize(screen utils.Vec2) utils.Vec2 {
	if c.scaleFactor <= 0 {
		return screen
	}
	return screen.Div(c.scaleFactor)
}
