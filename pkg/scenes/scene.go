package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps are the services shared by every scene.
type Deps struct {
	SceneManager *game.SceneManager
	Display      game.Display
	Registry     *canvas.Registry
	Resources    *game.ResourceManager
}

// SceneCanvas is the root canvas of a scene and the scaler driving it.
type SceneCanvas struct {
	Canvas *canvas.Canvas
	Scaler *canvas.Scaler
}

const (
	titleFontSize  = 48
	buttonFontSize = 28
)

var (
	buttonIdleColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	buttonHoverColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	buttonPressedColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// baseScene holds what both scenes share: the root canvas lifecycle, the
// ebitenui tree and the switch button.
type baseScene struct {
	deps       Deps
	id         game.SceneID
	spec       game.SceneSpec
	root       SceneCanvas
	background color.Color
	ui         *ebitenui.UI
}

func newBaseScene(deps Deps, id game.SceneID, spec game.SceneSpec, root SceneCanvas, bg color.Color) baseScene {
	return baseScene{deps: deps, id: id, spec: spec, root: root, background: bg}
}

// buildUI creates a centered title and a button that loads target.
func (s *baseScene) buildUI(title, buttonLabel string, target game.SceneID) error {
	titleFace, err := s.deps.Resources.LoadFont(titleFontSize)
	if err != nil {
		return err
	}
	buttonFace, err := s.deps.Resources.LoadFont(buttonFontSize)
	if err != nil {
		return err
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(40),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(50)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, titleFace, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(buttonIdleColor),
		Hover:   image.NewNineSliceColor(buttonHoverColor),
		Pressed: image.NewNineSliceColor(buttonPressedColor),
	}
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(buttonLabel, buttonFace, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(20)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.requestScene(target)
		}),
	))

	s.ui = &ebitenui.UI{Container: rootContainer}
	return nil
}

// requestScene asks the scene manager to load target.
func (s *baseScene) requestScene(target game.SceneID) {
	if s.deps.SceneManager == nil {
		return
	}
	if err := s.deps.SceneManager.LoadScene(target); err != nil {
		log.Printf("[%s] Failed to request %s: %v", s.id, target, err)
	}
}

// enterCanvas registers the root canvas so the app scales it every layout pass.
func (s *baseScene) enterCanvas() {
	if s.deps.Registry == nil || s.root.Canvas == nil {
		return
	}
	s.deps.Registry.Register(s.root.Canvas, s.root.Scaler)
}

// exitCanvas resets the scaler and removes the root canvas.
func (s *baseScene) exitCanvas() {
	if s.root.Scaler != nil {
		s.root.Scaler.Disable()
	}
	if s.deps.Registry != nil && s.root.Canvas != nil {
		s.deps.Registry.Unregister(s.root.Canvas)
	}
}

// RootCanvas returns the root canvas of the scene.
func (s *baseScene) RootCanvas() *canvas.Canvas {
	return s.root.Canvas
}

// ID returns the scene id.
func (s *baseScene) ID() game.SceneID {
	return s.id
}

// Update updates the UI.
func (s *baseScene) Update(deltaTime float64) {
	if s.ui != nil {
		s.ui.Update()
	}
}

// Draw fills the background and draws the UI.
func (s *baseScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	if s.ui != nil {
		s.ui.Draw(screen)
	}
}
