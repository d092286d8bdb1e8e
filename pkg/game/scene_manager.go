package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/fullhouse/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrLoadInProgress is returned by LoadScene while another load is running.
var ErrLoadInProgress = errors.New("scene load already in progress")

// SceneFactory builds the scene with the given id. It runs off the update
// loop and reports its own progress in [0, 1] through progress.
type SceneFactory func(id SceneID, progress func(float64)) (Scene, error)

// SceneLoadedFunc is called after a loaded scene became active.
type SceneLoadedFunc func(id SceneID)

// loadPhase is where a scene load stands between frames.
type loadPhase int

const (
	phaseIdle       loadPhase = iota
	phaseEndOfFrame           // resolution applied, waiting for the frame to end
	phaseLoading              // factory running, progress polled every frame
	phaseActivate             // factory finished, activating next frame
	phaseHoldPopup            // new scene active, loading popup still shown
)

type loadResult struct {
	scene Scene
	err   error
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换分多帧完成：
//  1. 设置目标场景的分辨率与屏幕方向，同步弹窗画布的参考分辨率，等待一帧
//  2. 显示加载弹窗，异步运行场景工厂，每帧上报 0.8 + 0.1 * 工厂进度
//  3. 工厂完成后上报 0.9，下一帧切换场景
//  4. 加载弹窗保持 popupHold 秒后关闭
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	onLoaded     SceneLoadedFunc

	display   Display
	popup     *PopupManager
	specs     map[SceneID]SceneSpec
	popupHold float64

	// run 启动异步任务，测试中替换为同步执行
	run func(func())

	nextScene  SceneID
	currWidth  int
	currHeight int

	// 加载失败时恢复
	prevWidth       int
	prevHeight      int
	prevOrientation Orientation

	loadOp      *LoadOperation
	factoryOp   *LoadOperation
	results     chan loadResult
	pending     Scene
	phase       loadPhase
	holdElapsed float64
	lastErr     error
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadScene or SwitchTo to set the initial scene.
func NewSceneManager(display Display, popup *PopupManager, specs map[SceneID]SceneSpec) *SceneManager {
	return &SceneManager{
		currentID: SceneUnknown,
		nextScene: SceneUnknown,
		display:   display,
		popup:     popup,
		specs:     specs,
		popupHold: config.LoadingPopupHoldSeconds,
		run:       func(f func()) { go f() },
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetSceneLoadedHandler sets the callback run after each completed load.
func (sm *SceneManager) SetSceneLoadedHandler(fn SceneLoadedFunc) {
	sm.onLoaded = fn
}

// SetPopupHold sets how long the loading popup stays after the switch, in seconds.
func (sm *SceneManager) SetPopupHold(seconds float64) {
	sm.popupHold = seconds
}

// Start fills in the current resolution from the display when none was set.
func (sm *SceneManager) Start() {
	if sm.display == nil {
		return
	}
	w, h := sm.display.Size()
	if sm.currHeight <= 0 {
		sm.currHeight = h
	}
	if sm.currWidth <= 0 {
		sm.currWidth = w
	}
}

// SetCurrResolution overrides the current canvas resolution.
func (sm *SceneManager) SetCurrResolution(width, height int) {
	sm.currWidth = width
	sm.currHeight = height
}

// CanvasResolution returns the current canvas resolution.
func (sm *SceneManager) CanvasResolution() (int, int) {
	return sm.currWidth, sm.currHeight
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if exitable, ok := sm.currentScene.(Exitable); ok && sm.currentScene != scene {
		exitable.OnExit()
	}
	sm.currentScene = scene
	if enterable, ok := scene.(Enterable); ok {
		enterable.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneID returns the id of the active scene.
func (sm *SceneManager) CurrentSceneID() SceneID {
	return sm.currentID
}

// NextScene returns the scene being loaded, or SceneUnknown.
func (sm *SceneManager) NextScene() SceneID {
	return sm.nextScene
}

// IsLoading reports whether a load is in progress, including the popup hold.
func (sm *SceneManager) IsLoading() bool {
	return sm.phase != phaseIdle
}

// LoadOperation returns the handle of the current or last load, nil before
// the first load.
func (sm *SceneManager) LoadOperation() *LoadOperation {
	return sm.loadOp
}

// LastError returns the error of the last failed load.
func (sm *SceneManager) LastError() error {
	return sm.lastErr
}

// LoadScene starts loading the scene with the given id.
func (sm *SceneManager) LoadScene(id SceneID) error {
	if sm.phase != phaseIdle {
		log.Printf("[SceneManager] Warning: %s requested while loading %s", id, sm.nextScene)
		return ErrLoadInProgress
	}
	if _, ok := sm.specs[id]; !ok {
		return fmt.Errorf("load %s: %w", id, config.ErrUnknownScene)
	}
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return fmt.Errorf("load %s: scene factory not set", id)
	}

	log.Printf("[SceneManager] 加载场景: %s", id)
	sm.nextScene = id
	sm.lastErr = nil
	sm.prevWidth, sm.prevHeight = sm.currWidth, sm.currHeight
	sm.prevOrientation = OrientationUnknown
	if sm.display != nil {
		sm.prevOrientation = sm.display.Orientation()
	}
	sm.setResolution()
	sm.phase = phaseEndOfFrame
	return nil
}

// setResolution applies the next scene's resolution and orientation.
func (sm *SceneManager) setResolution() {
	spec := sm.specs[sm.nextScene]
	sm.currWidth = spec.Width
	sm.currHeight = spec.Height

	if sm.display != nil && sm.display.Orientation() != spec.Orientation {
		sm.display.SetOrientation(spec.Orientation, spec.Width, spec.Height)
	}
	if sm.popup != nil {
		sm.popup.SetCanvasResolution(float64(sm.currWidth), float64(sm.currHeight))
	}
}

// restoreResolution puts back the resolution, orientation and popup
// reference resolution that were active before the failed load.
func (sm *SceneManager) restoreResolution() {
	sm.currWidth, sm.currHeight = sm.prevWidth, sm.prevHeight
	if sm.popup != nil && sm.currWidth > 0 && sm.currHeight > 0 {
		sm.popup.SetCanvasResolution(float64(sm.currWidth), float64(sm.currHeight))
	}

	if sm.display == nil || sm.display.Orientation() == sm.prevOrientation {
		return
	}
	// AutoRotation 不改变窗口，先恢复当前场景的固定方向
	if spec, ok := sm.specs[sm.currentID]; ok && spec.Orientation != sm.prevOrientation {
		sm.display.SetOrientation(spec.Orientation, spec.Width, spec.Height)
	}
	sm.display.SetOrientation(sm.prevOrientation, sm.currWidth, sm.currHeight)
}

// Update advances the pending load, then updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.updateLoad(deltaTime)

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

func (sm *SceneManager) updateLoad(deltaTime float64) {
	switch sm.phase {
	case phaseEndOfFrame:
		sm.beginLoad()
	case phaseLoading:
		sm.pollLoad()
	case phaseActivate:
		sm.activate()
	case phaseHoldPopup:
		sm.holdElapsed += deltaTime
		if sm.holdElapsed >= sm.popupHold {
			sm.setLoadingPopup(false)
			sm.loadOp.Done()
			sm.phase = phaseIdle
		}
	}
}

func (sm *SceneManager) beginLoad() {
	if sm.loadOp == nil {
		sm.loadOp = NewLoadOperation()
	} else {
		sm.loadOp.Reset()
	}
	sm.factoryOp = NewLoadOperation()
	sm.results = make(chan loadResult, 1)
	sm.setLoadingPopup(true)
	sm.phase = phaseLoading

	id := sm.nextScene
	factory := sm.sceneFactory
	factoryOp := sm.factoryOp
	results := sm.results
	sm.run(func() {
		scene, err := factory(id, factoryOp.UpdateProgress)
		results <- loadResult{scene: scene, err: err}
	})

	sm.pollLoad()
}

func (sm *SceneManager) pollLoad() {
	select {
	case res := <-sm.results:
		if res.err == nil && res.scene == nil {
			res.err = fmt.Errorf("scene factory returned no scene")
		}
		if res.err != nil {
			sm.lastErr = fmt.Errorf("load %s: %w", sm.nextScene, res.err)
			log.Printf("[SceneManager] 错误: 无法创建场景: %v", sm.lastErr)
			sm.restoreResolution()
			sm.setLoadingPopup(false)
			sm.nextScene = SceneUnknown
			sm.phase = phaseIdle
			return
		}
		sm.loadOp.UpdateProgress(0.9)
		sm.pending = res.scene
		sm.phase = phaseActivate
	default:
		sm.loadOp.UpdateProgress(config.LoadProgressBase + config.LoadProgressSpan*sm.factoryOp.Progress())
	}
}

func (sm *SceneManager) activate() {
	id := sm.nextScene
	sm.SwitchTo(sm.pending)
	sm.pending = nil
	sm.currentID = id
	sm.nextScene = SceneUnknown
	log.Printf("[SceneManager] 成功切换到场景: %s", id)

	if sm.onLoaded != nil {
		sm.onLoaded(id)
	}

	sm.holdElapsed = 0
	sm.phase = phaseHoldPopup
}

func (sm *SceneManager) setLoadingPopup(visible bool) {
	if sm.popup != nil {
		sm.popup.SetLoadingPopup(visible)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
