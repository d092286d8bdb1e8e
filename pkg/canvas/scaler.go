package canvas

import (
	"math"

	"github.com/decker502/fullhouse/pkg/camera"
	"github.com/decker502/fullhouse/pkg/utils"
)

// Fallback camera used by world space canvases when no camera is available.
var (
	fallbackCameraPosition = utils.Vec3{X: 400, Y: 640, Z: -765}
	fallbackCameraFOV      = 77.3
)

// Screen is what the host reports about the output surface each layout pass.
type Screen struct {
	Size utils.Vec2
	// DPI is 0 when the host cannot report it.
	DPI float64
	// Displays holds the rendering size of each connected display; index 0 is
	// the main display and is never read, Size is used for it instead.
	Displays []utils.Vec2
}

// Settings are the authored scaler parameters.
type Settings struct {
	UIScaleMode            ScaleMode
	WorldSpaceScaleMode    WorldSpaceScaleMode
	ReferencePixelsPerUnit float64
	ScaleFactor            float64
	ReferenceResolution    utils.Vec2
	ScreenMatchMode        ScreenMatchMode
	MatchWidthOrHeight     float64
	PhysicalUnit           Unit
	FallbackScreenDPI      float64
	DefaultSpriteDPI       float64
	DynamicPixelsPerUnit   float64
}

// DefaultSettings returns the settings of a freshly added scaler.
func DefaultSettings() Settings {
	return Settings{
		UIScaleMode:            ConstantPixelSize,
		WorldSpaceScaleMode:    DoNotUseScale,
		ReferencePixelsPerUnit: DefaultReferencePixelsPerUnit,
		ScaleFactor:            1,
		ReferenceResolution:    utils.Vec2{X: 800, Y: 600},
		ScreenMatchMode:        MatchWidthOrHeight,
		MatchWidthOrHeight:     0,
		PhysicalUnit:           Points,
		FallbackScreenDPI:      96,
		DefaultSpriteDPI:       96,
		DynamicPixelsPerUnit:   1,
	}
}

// Scaler recomputes the scale factor of one canvas on every layout pass.
//
// Writes to the surface go through a change-detection guard: a value equal to
// the last applied one is not written again.
type Scaler struct {
	Name string

	surface     Surface
	settings    Settings
	worldCamera *camera.Camera
	mainCamera  func() *camera.Camera

	prevScaleFactor            float64
	prevReferencePixelsPerUnit float64
}

// NewScaler creates a scaler for surface. Settings are validated the same way
// the individual setters validate them.
func NewScaler(name string, surface Surface, settings Settings) *Scaler {
	s := &Scaler{
		Name:                       name,
		surface:                    surface,
		prevScaleFactor:            DefaultScaleFactor,
		prevReferencePixelsPerUnit: DefaultReferencePixelsPerUnit,
	}
	s.settings = settings
	s.SetScaleFactor(settings.ScaleFactor)
	s.SetReferenceResolution(settings.ReferenceResolution)
	s.SetDefaultSpriteDPI(settings.DefaultSpriteDPI)
	return s
}

// Surface returns the canvas the scaler writes to.
func (s *Scaler) Surface() Surface { return s.surface }

// Settings returns a copy of the current settings.
func (s *Scaler) Settings() Settings { return s.settings }

func (s *Scaler) SetUIScaleMode(mode ScaleMode)                   { s.settings.UIScaleMode = mode }
func (s *Scaler) SetWorldSpaceScaleMode(mode WorldSpaceScaleMode) { s.settings.WorldSpaceScaleMode = mode }
func (s *Scaler) SetScreenMatchMode(mode ScreenMatchMode)         { s.settings.ScreenMatchMode = mode }
func (s *Scaler) SetMatchWidthOrHeight(match float64)             { s.settings.MatchWidthOrHeight = match }
func (s *Scaler) SetPhysicalUnit(unit Unit)                       { s.settings.PhysicalUnit = unit }
func (s *Scaler) SetFallbackScreenDPI(dpi float64)                { s.settings.FallbackScreenDPI = dpi }
func (s *Scaler) SetDynamicPixelsPerUnit(ppu float64)             { s.settings.DynamicPixelsPerUnit = ppu }
func (s *Scaler) SetReferencePixelsPerUnit(ppu float64)           { s.settings.ReferencePixelsPerUnit = ppu }
func (s *Scaler) SetWorldCamera(cam *camera.Camera)               { s.worldCamera = cam }
func (s *Scaler) WorldCamera() *camera.Camera                     { return s.worldCamera }
func (s *Scaler) ReferenceResolution() utils.Vec2                 { return s.settings.ReferenceResolution }

// SetMainCameraProvider sets the last camera fallback for world space canvases.
func (s *Scaler) SetMainCameraProvider(provider func() *camera.Camera) {
	s.mainCamera = provider
}

// SetScaleFactor sets the constant pixel size factor, at least MinimumScaleFactor.
func (s *Scaler) SetScaleFactor(factor float64) {
	s.settings.ScaleFactor = math.Max(MinimumScaleFactor, factor)
}

// SetDefaultSpriteDPI sets the sprite DPI, at least 1.
func (s *Scaler) SetDefaultSpriteDPI(dpi float64) {
	s.settings.DefaultSpriteDPI = math.Max(1, dpi)
}

// SetReferenceResolution sets the resolution the layout is designed for.
// Components closer to zero than MinimumResolution are clamped.
func (s *Scaler) SetReferenceResolution(resolution utils.Vec2) {
	s.settings.ReferenceResolution = ClampResolution(resolution)
}

// Enable applies the scaling immediately.
func (s *Scaler) Enable(screen Screen) {
	s.Handle(screen)
}

// Disable resets the surface to the default scale.
func (s *Scaler) Disable() {
	if s.surface == nil {
		return
	}
	s.setScaleFactor(DefaultScaleFactor)
	s.setReferencePixelsPerUnit(DefaultReferencePixelsPerUnit)
}

// Handle recomputes and applies the scaling for the current screen.
// Nested canvases are left alone, they follow their root.
func (s *Scaler) Handle(screen Screen) {
	if s.surface == nil || !s.surface.IsRoot() {
		return
	}

	if s.surface.RenderMode() == WorldSpace {
		s.handleWorldCanvas(screen)
		return
	}

	switch s.settings.UIScaleMode {
	case ConstantPixelSize:
		s.handleConstantPixelSize()
	case ScaleWithScreenSize:
		s.handleScaleWithScreenSize(screen)
	case ConstantPhysicalSize:
		s.handleConstantPhysicalSize(screen)
	}
}

func (s *Scaler) handleWorldCanvas(screen Screen) {
	switch s.settings.WorldSpaceScaleMode {
	case DoNotUseScale:
		s.surface.SetSizeDelta(s.settings.ReferenceResolution)
		s.surface.SetLocalScale(1)
		s.setScaleFactor(s.settings.DynamicPixelsPerUnit)
		s.setReferencePixelsPerUnit(s.settings.ReferencePixelsPerUnit)
	case WorldScaleWithScreenSize:
		size := screen.Size
		factor := ComputeScaleFactor(size, s.settings.ReferenceResolution, s.settings.ScreenMatchMode, s.settings.MatchWidthOrHeight)
		camHeight := s.cameraHeight()
		s.surface.SetSizeDelta(size.Div(factor))
		s.surface.SetLocalScale(camHeight / ClampResolution(size).Y * factor)
	}
}

// cameraHeight resolves the camera in the order scaler, canvas, main.
func (s *Scaler) cameraHeight() float64 {
	cam := s.worldCamera
	if cam == nil {
		cam = s.surface.WorldCamera()
	}
	if cam == nil && s.mainCamera != nil {
		cam = s.mainCamera()
	}
	if cam == nil {
		return camera.PerspectiveHeight(fallbackCameraPosition, s.surface.Position(), fallbackCameraFOV)
	}
	return cam.ViewHeight(s.surface.Position())
}

func (s *Scaler) handleConstantPixelSize() {
	s.setScaleFactor(s.settings.ScaleFactor)
	s.setReferencePixelsPerUnit(s.settings.ReferencePixelsPerUnit)
}

func (s *Scaler) handleScaleWithScreenSize(screen Screen) {
	size := screen.Size

	// 多屏支持仅限非主屏：主屏尺寸始终由 Screen.Size 给出
	index := s.surface.TargetDisplay()
	if index > 0 && index < len(screen.Displays) {
		size = screen.Displays[index]
	}

	factor := ComputeScaleFactor(size, s.settings.ReferenceResolution, s.settings.ScreenMatchMode, s.settings.MatchWidthOrHeight)
	s.setScaleFactor(factor)
	s.setReferencePixelsPerUnit(s.settings.ReferencePixelsPerUnit)
}

func (s *Scaler) handleConstantPhysicalSize(screen Screen) {
	unit := s.settings.PhysicalUnit
	s.setScaleFactor(PhysicalScaleFactor(screen.DPI, s.settings.FallbackScreenDPI, unit))
	s.setReferencePixelsPerUnit(PhysicalPixelsPerUnit(s.settings.ReferencePixelsPerUnit, s.settings.DefaultSpriteDPI, unit))
}

func (s *Scaler) setScaleFactor(factor float64) {
	if factor == s.prevScaleFactor {
		return
	}
	s.surface.SetScaleFactor(factor)
	s.prevScaleFactor = factor
}

func (s *Scaler) setReferencePixelsPerUnit(ppu float64) {
	if ppu == s.prevReferencePixelsPerUnit {
		return
	}
	s.surface.SetReferencePixelsPerUnit(ppu)
	s.prevReferencePixelsPerUnit = ppu
}
