package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/fullhouse/pkg/game"
)

var tableBackground = color.RGBA{R: 92, G: 24, B: 28, A: 255}

// TableScene is scene B, the portrait table.
type TableScene struct {
	baseScene
}

// NewTableScene creates the table scene. Like NewLobbyScene it runs off the
// update loop.
func NewTableScene(deps Deps, spec game.SceneSpec, root SceneCanvas, progress func(float64)) (*TableScene, error) {
	s := &TableScene{baseScene: newBaseScene(deps, game.SceneB, spec, root, tableBackground)}
	report(progress, 0.5)

	if err := s.buildUI("Table", "Move to A", game.SceneA); err != nil {
		return nil, err
	}
	report(progress, 1)
	return s, nil
}

// OnEnter forces portrait.
func (s *TableScene) OnEnter() {
	if d := s.deps.Display; d != nil && d.Orientation() != game.Portrait {
		d.SetOrientation(game.Portrait, s.spec.Width, s.spec.Height)
	}
	s.enterCanvas()
	log.Printf("[TableScene] Entered")
}

// OnExit removes the table canvas.
func (s *TableScene) OnExit() {
	s.exitCanvas()
}
