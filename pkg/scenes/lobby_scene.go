package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/fullhouse/pkg/game"
)

var lobbyBackground = color.RGBA{R: 16, G: 82, B: 48, A: 255}

// LobbyScene is scene A, the landscape lobby.
type LobbyScene struct {
	baseScene
}

// NewLobbyScene creates the lobby. It is called by the scene factory, off the
// update loop; progress reports the build progress in [0, 1].
func NewLobbyScene(deps Deps, spec game.SceneSpec, root SceneCanvas, progress func(float64)) (*LobbyScene, error) {
	s := &LobbyScene{baseScene: newBaseScene(deps, game.SceneA, spec, root, lobbyBackground)}
	report(progress, 0.5)

	if err := s.buildUI("Lobby", "Move to B", game.SceneB); err != nil {
		return nil, err
	}
	report(progress, 1)
	return s, nil
}

// OnEnter locks the display to landscape, then lets it rotate between the
// two landscape orientations.
func (s *LobbyScene) OnEnter() {
	if d := s.deps.Display; d != nil {
		if !d.Orientation().IsLandscape() {
			d.SetOrientation(game.LandscapeLeft, s.spec.Width, s.spec.Height)
		}
		d.SetAutorotation(game.LandscapeOnly())
		d.SetOrientation(game.AutoRotation, s.spec.Width, s.spec.Height)
	}
	s.enterCanvas()
	log.Printf("[LobbyScene] Entered")
}

// OnExit removes the lobby canvas.
func (s *LobbyScene) OnExit() {
	s.exitCanvas()
}

func report(progress func(float64), p float64) {
	if progress != nil {
		progress(p)
	}
}
