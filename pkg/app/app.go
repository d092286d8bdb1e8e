// Package app 提供游戏应用的核心包装器
//
// 该包是组合根：加载显示配置、创建 Kernel、场景管理器和加载弹窗，
// 并实现 ebiten.Game 接口。桌面端通过 main.go 调用 NewApp()，
// 移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/config"
	"github.com/decker502/fullhouse/pkg/game"
	"github.com/decker502/fullhouse/pkg/scenes"
	"github.com/decker502/fullhouse/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// gdataAppName 是 gdata 存储目录名
const gdataAppName = "fullhouse"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartScene 指定启动场景（如 "Scene_B"），为空则使用上次退出的场景或配置的起始场景
	StartScene string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	kernel       *Kernel
	sceneManager *game.SceneManager
	display      *ebitenDisplay
	settings     *game.SettingsManager
	loadingPopup *scenes.LoadingPopup
	resources    *game.ResourceManager
	specs        map[game.SceneID]game.SceneSpec

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	screen     canvas.Screen
	popupLayer *ebiten.Image
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	displayCfg, err := config.LoadDisplayConfig(config.DisplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("显示配置加载失败: %w", err)
	}

	specs, err := sceneSpecs(displayCfg)
	if err != nil {
		return nil, err
	}

	kernel, err := NewKernel(displayCfg)
	if err != nil {
		return nil, fmt.Errorf("Kernel 初始化失败: %w", err)
	}

	settings := game.NewSettingsManager(openGdata())

	windowScale := displayCfg.Window.Scale
	if s := settings.GetSettings().WindowScale; s > 0 {
		windowScale = s
	}

	a := &App{
		kernel:    kernel,
		display:   newEbitenDisplay(windowScale, game.OrientationUnknown),
		settings:  settings,
		resources: game.NewResourceManager(),
		specs:     specs,
	}

	a.sceneManager = game.NewSceneManager(a.display, kernel.Popup, specs)
	a.sceneManager.SetPopupHold(displayCfg.Loading.HoldSeconds)
	a.sceneManager.SetSceneFactory(a.buildScene)
	a.sceneManager.SetSceneLoadedHandler(a.onSceneLoaded)

	a.loadingPopup, err = scenes.NewLoadingPopup(kernel.Popup, a.sceneManager, a.resources)
	if err != nil {
		return nil, err
	}

	kernel.OnKernelLoaded()

	start, err := a.startScene(cfg.StartScene, displayCfg.StartScene)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Starting scene: %s", start)

	ebiten.SetWindowTitle(displayCfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a.sceneManager.Start()
	if err := a.sceneManager.LoadScene(start); err != nil {
		return nil, fmt.Errorf("启动场景加载失败: %w", err)
	}

	return a, nil
}

// openGdata 打开用户数据存储，失败时返回 nil（降级为仅内存设置）
func openGdata() *gdata.Manager {
	if dir, err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir: %v", err)
	} else if dir != "" {
		log.Printf("[App] Storage dir: %s", dir)
	}

	m, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// sceneSpecs converts the scene section of the display config.
func sceneSpecs(cfg *config.DisplayConfig) (map[game.SceneID]game.SceneSpec, error) {
	specs := make(map[game.SceneID]game.SceneSpec, len(cfg.Scenes))
	for _, sc := range cfg.Scenes {
		id, err := game.ParseSceneID(sc.ID)
		if err != nil {
			return nil, fmt.Errorf("display config: %w", err)
		}
		o, err := game.ParseOrientation(sc.Orientation)
		if err != nil {
			return nil, fmt.Errorf("display config: scene %s: %w", sc.ID, err)
		}
		specs[id] = game.SceneSpec{Width: sc.Width, Height: sc.Height, Orientation: o}
	}
	return specs, nil
}

// startScene picks the first scene: command line, then saved, then config.
func (a *App) startScene(requested, configured string) (game.SceneID, error) {
	if requested != "" {
		id, err := game.ParseSceneID(requested)
		if err != nil {
			return game.SceneUnknown, fmt.Errorf("-scene: %w", err)
		}
		return id, nil
	}
	if id := a.settings.LastScene(); id != game.SceneUnknown {
		if _, ok := a.specs[id]; ok {
			return id, nil
		}
	}
	if configured != "" {
		return game.ParseSceneID(configured)
	}
	return game.SceneA, nil
}

// buildScene is the scene factory. It runs off the update loop.
func (a *App) buildScene(id game.SceneID, progress func(float64)) (game.Scene, error) {
	sceneCfg, err := a.kernel.Config.Scene(id.String())
	if err != nil {
		return nil, err
	}
	root, err := a.kernel.NewSceneCanvas(sceneCfg.Canvas)
	if err != nil {
		return nil, err
	}

	deps := scenes.Deps{
		SceneManager: a.sceneManager,
		Display:      a.display,
		Registry:     a.kernel.Registry,
		Resources:    a.resources,
	}

	switch id {
	case game.SceneA:
		lobby, err := scenes.NewLobbyScene(deps, a.specs[id], root, progress)
		if err != nil {
			return nil, err
		}
		return lobby, nil
	case game.SceneB:
		table, err := scenes.NewTableScene(deps, a.specs[id], root, progress)
		if err != nil {
			return nil, err
		}
		return table, nil
	}
	return nil, fmt.Errorf("no scene for %s: %w", id, config.ErrUnknownScene)
}

// onSceneLoaded binds the new scene canvas to its camera and remembers the scene.
func (a *App) onSceneLoaded(id game.SceneID) {
	a.kernel.OnKernelLoaded()
	a.settings.SetLastScene(id)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.sceneManager.CanvasResolution()
			ww, wh := a.display.windowSize(w, h)
			ebiten.SetWindowSize(ww, wh)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", ww, wh)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	a.loadingPopup.Update()
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次：先绘制当前场景，再在弹窗画布空间绘制加载弹窗
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.drawPopup(screen)
}

// drawPopup renders the loading popup at the popup canvas scale, then maps it
// onto the scene's logical screen.
func (a *App) drawPopup(screen *ebiten.Image) {
	if !a.loadingPopup.Visible() {
		return
	}

	popupFactor := a.kernel.PopupCanvas.Canvas.ScaleFactor()
	w, h := a.kernel.PopupCanvas.Canvas.LogicalSize(a.screen.Size).Ints()
	if w <= 0 || h <= 0 {
		return
	}

	if a.popupLayer == nil || a.popupLayer.Bounds().Dx() != w || a.popupLayer.Bounds().Dy() != h {
		if a.popupLayer != nil {
			a.popupLayer.Deallocate()
		}
		a.popupLayer = ebiten.NewImage(w, h)
	}
	a.popupLayer.Clear()
	a.loadingPopup.Draw(a.popupLayer)

	scale := popupFactor / a.sceneScaleFactor()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.popupLayer, op)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 物理像素 = outside * 设备缩放系数。每次布局都让所有已注册画布的缩放器重新计算，
// 逻辑尺寸 = 物理像素 / 当前场景画布的缩放系数。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.display.setOutsideSize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	a.screen = a.currentScreen()
	a.kernel.Registry.HandleAll(a.screen)

	w, h := a.screen.Size.Div(a.sceneScaleFactor()).Ints()
	return max(w, 1), max(h, 1)
}

// currentScreen describes the output surface for the canvas scalers.
func (a *App) currentScreen() canvas.Screen {
	w, h := a.display.Size()
	screen := canvas.Screen{
		Size: utils.NewVec2(w, h),
		DPI:  a.display.DPI(),
	}
	for _, size := range a.display.DisplaySizes() {
		screen.Displays = append(screen.Displays, utils.NewVec2(size[0], size[1]))
	}
	return screen
}

// sceneScaleFactor returns the scale factor of the active scene canvas, or of
// the popup canvas before the first scene is active.
func (a *App) sceneScaleFactor() float64 {
	c := a.kernel.PopupCanvas.Canvas
	if owner, ok := a.sceneManager.GetCurrentScene().(interface{ RootCanvas() *canvas.Canvas }); ok && owner.RootCanvas() != nil {
		c = owner.RootCanvas()
	}
	if f := c.ScaleFactor(); f > 0 {
		return f
	}
	return canvas.DefaultScaleFactor
}

// SaveOnExit 在程序退出时保存当前场景状态和用户设置
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene %s failed to save", a.sceneManager.CurrentSceneID())
		}
	}
	a.settings.SetLastScene(a.sceneManager.CurrentSceneID())
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Close releases the kernel. The app must not be used afterwards.
func (a *App) Close() {
	if a.popupLayer != nil {
		a.popupLayer.Deallocate()
		a.popupLayer = nil
	}
	a.kernel.Destroy()
}
