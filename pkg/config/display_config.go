package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/embedded"
	"github.com/decker502/fullhouse/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Full House"

	// DefaultWindowScale 桌面窗口尺寸相对场景分辨率的缩放
	DefaultWindowScale = 0.5

	// DisplayConfigPath 嵌入的显示配置文件路径
	DisplayConfigPath = "data/config/display.yaml"
)

// ErrUnknownScene 场景未在显示配置中声明
var ErrUnknownScene = errors.New("unknown scene")

// DisplayConfig 显示配置：窗口、场景分辨率、相机和画布缩放参数
type DisplayConfig struct {
	Window     WindowConfig   `yaml:"window"`
	StartScene string         `yaml:"startScene"`
	Scenes     []SceneConfig  `yaml:"scenes"`
	Cameras    []CameraConfig `yaml:"cameras"`
	Canvases   []CanvasConfig `yaml:"canvases"`
	Loading    LoadingConfig  `yaml:"loading"`
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // 窗口尺寸 = 场景分辨率 * Scale
}

// SceneConfig 单个场景的分辨率与屏幕方向
type SceneConfig struct {
	ID          string `yaml:"id"`          // 场景名，如 "Scene_A"
	Width       int    `yaml:"width"`       // 参考分辨率宽度
	Height      int    `yaml:"height"`      // 参考分辨率高度
	Orientation string `yaml:"orientation"` // "landscape" / "portrait"
	Canvas      string `yaml:"canvas"`      // 场景根画布名称
}

// CameraConfig 相机配置，名称与画布名称去掉 "Canvas" 后缀对应
type CameraConfig struct {
	Name             string     `yaml:"name"`
	Position         [3]float64 `yaml:"position"`
	Orthographic     bool       `yaml:"orthographic"`
	OrthographicSize float64    `yaml:"orthographicSize"`
	FieldOfView      float64    `yaml:"fieldOfView"`
}

// CanvasConfig 画布及其缩放器配置
type CanvasConfig struct {
	Name          string       `yaml:"name"`
	RenderMode    string       `yaml:"renderMode"`
	TargetDisplay int          `yaml:"targetDisplay"`
	Scaler        ScalerConfig `yaml:"scaler"`
}

// ScalerConfig 画布缩放器配置，零值字段使用默认值
type ScalerConfig struct {
	UIScaleMode            string     `yaml:"uiScaleMode"`
	WorldSpaceScaleMode    string     `yaml:"worldSpaceScaleMode"`
	ReferenceResolution    [2]float64 `yaml:"referenceResolution"`
	ScreenMatchMode        string     `yaml:"screenMatchMode"`
	MatchWidthOrHeight     float64    `yaml:"matchWidthOrHeight"`
	ScaleFactor            float64    `yaml:"scaleFactor"`
	ReferencePixelsPerUnit float64    `yaml:"referencePixelsPerUnit"`
	PhysicalUnit           string     `yaml:"physicalUnit"`
	FallbackScreenDPI      float64    `yaml:"fallbackScreenDPI"`
	DefaultSpriteDPI       float64    `yaml:"defaultSpriteDPI"`
	DynamicPixelsPerUnit   float64    `yaml:"dynamicPixelsPerUnit"`
}

// LoadingConfig 加载弹窗配置
type LoadingConfig struct {
	HoldSeconds float64 `yaml:"holdSeconds"`
}

// LoadDisplayConfig 从嵌入资源加载显示配置
//
// 参数:
//   - path: 配置文件路径（如 "data/config/display.yaml"）
//
// 返回:
//   - *DisplayConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadDisplayConfig(path string) (*DisplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read display config: %w", err)
	}
	return ParseDisplayConfig(data)
}

// ParseDisplayConfig 解析 YAML 格式的显示配置，缺省值在此补齐
func ParseDisplayConfig(data []byte) (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display config: %w", err)
	}

	if cfg.Window.Title == "" {
		cfg.Window.Title = GameWindowTitle
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = DefaultWindowScale
	}
	if cfg.Loading.HoldSeconds <= 0 {
		cfg.Loading.HoldSeconds = LoadingPopupHoldSeconds
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少声明一个场景，场景名不重复，分辨率为正
//   - 起始场景已声明
//   - 画布名不重复，渲染模式与缩放器参数可解析
func (c *DisplayConfig) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("no scenes declared")
	}

	seen := make(map[string]bool)
	for _, s := range c.Scenes {
		key := strings.ToUpper(s.ID)
		if s.ID == "" {
			return fmt.Errorf("scene without id")
		}
		if seen[key] {
			return fmt.Errorf("duplicate scene '%s'", s.ID)
		}
		seen[key] = true
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("scene '%s' has invalid resolution %dx%d", s.ID, s.Width, s.Height)
		}
	}

	if c.StartScene != "" {
		if _, err := c.Scene(c.StartScene); err != nil {
			return fmt.Errorf("start scene: %w", err)
		}
	}

	names := make(map[string]bool)
	for _, cv := range c.Canvases {
		if cv.Name == "" {
			return fmt.Errorf("canvas without name")
		}
		if names[cv.Name] {
			return fmt.Errorf("duplicate canvas '%s'", cv.Name)
		}
		names[cv.Name] = true
		if _, err := cv.Mode(); err != nil {
			return fmt.Errorf("canvas '%s': %w", cv.Name, err)
		}
		if _, err := cv.Scaler.ToSettings(); err != nil {
			return fmt.Errorf("canvas '%s': %w", cv.Name, err)
		}
	}
	return nil
}

// Scene 按场景名查找场景配置（不区分大小写）
func (c *DisplayConfig) Scene(id string) (SceneConfig, error) {
	for _, s := range c.Scenes {
		if strings.EqualFold(s.ID, id) {
			return s, nil
		}
	}
	return SceneConfig{}, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}

// Canvas 按名称查找画布配置
func (c *DisplayConfig) Canvas(name string) (CanvasConfig, bool) {
	for _, cv := range c.Canvases {
		if cv.Name == name {
			return cv, true
		}
	}
	return CanvasConfig{}, false
}

// Mode 返回画布渲染模式，未配置时为 ScreenSpaceOverlay
func (c CanvasConfig) Mode() (canvas.RenderMode, error) {
	if c.RenderMode == "" {
		return canvas.ScreenSpaceOverlay, nil
	}
	return canvas.ParseRenderMode(c.RenderMode)
}

// ToSettings 将配置转换为缩放器参数，零值字段保留 canvas.DefaultSettings 的值
func (c ScalerConfig) ToSettings() (canvas.Settings, error) {
	s := canvas.DefaultSettings()
	var err error

	if c.UIScaleMode != "" {
		if s.UIScaleMode, err = canvas.ParseScaleMode(c.UIScaleMode); err != nil {
			return s, err
		}
	}
	if c.WorldSpaceScaleMode != "" {
		if s.WorldSpaceScaleMode, err = canvas.ParseWorldSpaceScaleMode(c.WorldSpaceScaleMode); err != nil {
			return s, err
		}
	}
	if c.ScreenMatchMode != "" {
		if s.ScreenMatchMode, err = canvas.ParseScreenMatchMode(c.ScreenMatchMode); err != nil {
			return s, err
		}
	}
	if c.PhysicalUnit != "" {
		if s.PhysicalUnit, err = canvas.ParseUnit(c.PhysicalUnit); err != nil {
			return s, err
		}
	}

	if c.ReferenceResolution != [2]float64{} {
		s.ReferenceResolution = utils.Vec2{X: c.ReferenceResolution[0], Y: c.ReferenceResolution[1]}
	}
	if c.MatchWidthOrHeight < 0 || c.MatchWidthOrHeight > 1 {
		return s, fmt.Errorf("matchWidthOrHeight %.2f out of range [0, 1]", c.MatchWidthOrHeight)
	}
	s.MatchWidthOrHeight = c.MatchWidthOrHeight

	if c.ScaleFactor > 0 {
		s.ScaleFactor = c.ScaleFactor
	}
	if c.ReferencePixelsPerUnit > 0 {
		s.ReferencePixelsPerUnit = c.ReferencePixelsPerUnit
	}
	if c.FallbackScreenDPI > 0 {
		s.FallbackScreenDPI = c.FallbackScreenDPI
	}
	if c.DefaultSpriteDPI > 0 {
		s.DefaultSpriteDPI = c.DefaultSpriteDPI
	}
	if c.DynamicPixelsPerUnit > 0 {
		s.DynamicPixelsPerUnit = c.DynamicPixelsPerUnit
	}
	return s, nil
}

// Vec3 返回相机位置
func (c CameraConfig) Vec3() utils.Vec3 {
	return utils.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}
}
