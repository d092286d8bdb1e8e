package scenes

import (
	"testing"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/game"
	"github.com/decker502/fullhouse/pkg/utils"
)

// fakeDisplay records orientation and autorotation requests.
type fakeDisplay struct {
	orientation  game.Orientation
	autorotation game.Autorotation
	history      []game.Orientation
}

func (d *fakeDisplay) Size() (int, int)       { return 1280, 720 }
func (d *fakeDisplay) DPI() float64           { return 0 }
func (d *fakeDisplay) DisplaySizes() [][2]int { return nil }
func (d *fakeDisplay) Orientation() game.Orientation {
	return d.orientation
}
func (d *fakeDisplay) SetOrientation(o game.Orientation, width, height int) {
	d.orientation = o
	d.history = append(d.history, o)
}
func (d *fakeDisplay) SetAutorotation(a game.Autorotation) { d.autorotation = a }

var testSpecs = map[game.SceneID]game.SceneSpec{
	game.SceneA: {Width: 1280, Height: 720, Orientation: game.Landscape},
	game.SceneB: {Width: 720, Height: 1280, Orientation: game.Portrait},
}

func newTestDeps(display *fakeDisplay) Deps {
	sm := game.NewSceneManager(display, game.NewPopupManager(nil), testSpecs)
	sm.SetSceneFactory(func(id game.SceneID, progress func(float64)) (game.Scene, error) {
		return nil, nil
	})
	return Deps{
		SceneManager: sm,
		Display:      display,
		Registry:     canvas.NewRegistry(),
		Resources:    game.NewResourceManager(),
	}
}

func newTestCanvas(name string) SceneCanvas {
	c := canvas.New(name, canvas.ScreenSpaceCamera)
	settings := canvas.DefaultSettings()
	settings.UIScaleMode = canvas.ScaleWithScreenSize
	return SceneCanvas{Canvas: c, Scaler: canvas.NewScaler(name+"Scaler", c, settings)}
}

func TestLobbySceneEnterLocksLandscape(t *testing.T) {
	display := &fakeDisplay{orientation: game.Portrait}
	deps := newTestDeps(display)

	var reported []float64
	lobby, err := NewLobbyScene(deps, testSpecs[game.SceneA], newTestCanvas("LobbyCanvas"), func(p float64) {
		reported = append(reported, p)
	})
	if err != nil {
		t.Fatalf("NewLobbyScene() error = %v", err)
	}
	if len(reported) == 0 || reported[len(reported)-1] != 1 {
		t.Errorf("progress reports = %v, want to end at 1", reported)
	}

	lobby.OnEnter()

	want := []game.Orientation{game.LandscapeLeft, game.AutoRotation}
	if len(display.history) != len(want) {
		t.Fatalf("orientation history = %v, want %v", display.history, want)
	}
	for i := range want {
		if display.history[i] != want[i] {
			t.Errorf("orientation[%d] = %v, want %v", i, display.history[i], want[i])
		}
	}
	if display.autorotation != game.LandscapeOnly() {
		t.Errorf("autorotation = %+v, want landscape only", display.autorotation)
	}
	if deps.Registry.Find("LobbyCanvas") != lobby.RootCanvas() {
		t.Error("lobby canvas not registered on enter")
	}
	if len(deps.Registry.Scalers()) != 1 {
		t.Errorf("registered scalers = %d, want 1", len(deps.Registry.Scalers()))
	}
}

func TestLobbySceneSkipsLockWhenLandscape(t *testing.T) {
	display := &fakeDisplay{orientation: game.LandscapeRight}
	lobby, err := NewLobbyScene(newTestDeps(display), testSpecs[game.SceneA], newTestCanvas("LobbyCanvas"), nil)
	if err != nil {
		t.Fatal(err)
	}
	lobby.OnEnter()

	if len(display.history) != 1 || display.history[0] != game.AutoRotation {
		t.Errorf("orientation history = %v, want only autoRotation", display.history)
	}
}

func TestTableSceneEnterForcesPortrait(t *testing.T) {
	tests := []struct {
		name      string
		start     game.Orientation
		wantCalls int
	}{
		{"from landscape", game.LandscapeLeft, 1},
		{"already portrait", game.Portrait, 0},
		{"from autorotation", game.AutoRotation, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := &fakeDisplay{orientation: tt.start}
			table, err := NewTableScene(newTestDeps(display), testSpecs[game.SceneB], newTestCanvas("TableCanvas"), nil)
			if err != nil {
				t.Fatal(err)
			}
			table.OnEnter()

			if len(display.history) != tt.wantCalls {
				t.Errorf("SetOrientation calls = %d, want %d", len(display.history), tt.wantCalls)
			}
			if display.orientation != game.Portrait {
				t.Errorf("orientation = %v, want portrait", display.orientation)
			}
		})
	}
}

func TestSceneExitUnregistersCanvas(t *testing.T) {
	display := &fakeDisplay{orientation: game.Portrait}
	deps := newTestDeps(display)
	root := newTestCanvas("TableCanvas")
	table, err := NewTableScene(deps, testSpecs[game.SceneB], root, nil)
	if err != nil {
		t.Fatal(err)
	}

	table.OnEnter()
	root.Scaler.Handle(canvas.Screen{Size: root.Scaler.ReferenceResolution().Scale(2)})
	if root.Canvas.ScaleFactor() != 2 {
		t.Fatalf("scale factor = %v, want 2", root.Canvas.ScaleFactor())
	}

	table.OnExit()
	if deps.Registry.Find("TableCanvas") != nil || len(deps.Registry.Scalers()) != 0 {
		t.Error("table canvas still registered after exit")
	}
	if root.Canvas.ScaleFactor() != canvas.DefaultScaleFactor {
		t.Errorf("scale factor after exit = %v, want default", root.Canvas.ScaleFactor())
	}
}

func TestSceneButtonRequestsLoad(t *testing.T) {
	display := &fakeDisplay{orientation: game.LandscapeLeft}
	deps := newTestDeps(display)
	lobby, err := NewLobbyScene(deps, testSpecs[game.SceneA], newTestCanvas("LobbyCanvas"), nil)
	if err != nil {
		t.Fatal(err)
	}

	lobby.requestScene(game.SceneB)
	if deps.SceneManager.NextScene() != game.SceneB {
		t.Errorf("NextScene() = %v, want Scene_B", deps.SceneManager.NextScene())
	}

	// 加载中重复请求被拒绝，不会覆盖目标场景
	lobby.requestScene(game.SceneA)
	if deps.SceneManager.NextScene() != game.SceneB {
		t.Errorf("NextScene() = %v after a rejected request", deps.SceneManager.NextScene())
	}
}

func TestLoadingPopupProgress(t *testing.T) {
	popup := game.NewPopupManager(nil)
	sm := game.NewSceneManager(nil, popup, testSpecs)
	lp, err := NewLoadingPopup(popup, sm, game.NewResourceManager())
	if err != nil {
		t.Fatalf("NewLoadingPopup() error = %v", err)
	}

	if lp.Visible() {
		t.Error("popup visible before SetLoadingPopup(true)")
	}
	popup.SetLoadingPopup(true)
	if !lp.Visible() {
		t.Error("popup hidden after SetLoadingPopup(true)")
	}

	// 尚未开始加载时进度为 0
	lp.syncProgress()
	if lp.Progress() != 0 || lp.label.Label != "Loading... 0%" {
		t.Errorf("progress %v label %q", lp.Progress(), lp.label.Label)
	}
}

// TestLoadingPopupBarFitsPortraitLayer 切到竖屏场景后进度条仍在弹窗图层内
func TestLoadingPopupBarFitsPortraitLayer(t *testing.T) {
	c := canvas.New("SystemPopupCanvas", canvas.ScreenSpaceOverlay)
	settings := canvas.DefaultSettings()
	settings.UIScaleMode = canvas.ScaleWithScreenSize
	settings.ScreenMatchMode = canvas.Expand
	settings.ReferenceResolution = utils.Vec2{X: 1280, Y: 720}
	scaler := canvas.NewScaler("SystemPopupCanvas", c, settings)
	popup := game.NewPopupManager(scaler)

	lp, err := NewLoadingPopup(popup, game.NewSceneManager(nil, popup, testSpecs), game.NewResourceManager())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		width, height float64
		screen        utils.Vec2
	}{
		{"landscape", 1280, 720, utils.Vec2{X: 640, Y: 360}},
		{"portrait", 720, 1280, utils.Vec2{X: 360, Y: 640}},
		{"portrait on wide window", 720, 1280, utils.Vec2{X: 1920, Y: 1080}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			popup.SetCanvasResolution(tt.width, tt.height)
			scaler.Handle(canvas.Screen{Size: tt.screen})
			layerWidth, _ := c.LogicalSize(tt.screen).Ints()

			lp.fitBar(layerWidth)

			if lp.BarWidth() <= 0 || lp.BarWidth() > layerWidth {
				t.Errorf("bar width %d does not fit layer width %d", lp.BarWidth(), layerWidth)
			}
			if got := lp.bar.GetWidget().MinWidth; got != lp.BarWidth() {
				t.Errorf("bar MinWidth = %d, want %d", got, lp.BarWidth())
			}
		})
	}
}

func TestBarWidthFor(t *testing.T) {
	tests := []struct {
		layer, expected int
	}{
		{1280, 768},
		{720, 432},
		{0, 0},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := barWidthFor(tt.layer); got != tt.expected {
			t.Errorf("barWidthFor(%d) = %d, want %d", tt.layer, got, tt.expected)
		}
	}
}

func TestLoadingLabel(t *testing.T) {
	tests := []struct {
		progress float64
		expected string
	}{
		{0, "Loading... 0%"},
		{0.85, "Loading... 85%"},
		{0.9, "Loading... 90%"},
		{1, "Loading... 100%"},
	}
	for _, tt := range tests {
		if got := loadingLabel(tt.progress); got != tt.expected {
			t.Errorf("loadingLabel(%v) = %q, want %q", tt.progress, got, tt.expected)
		}
	}
}
