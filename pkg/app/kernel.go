package app

import (
	"fmt"
	"log"

	"github.com/decker502/fullhouse/pkg/camera"
	"github.com/decker502/fullhouse/pkg/canvas"
	"github.com/decker502/fullhouse/pkg/config"
	"github.com/decker502/fullhouse/pkg/game"
	"github.com/decker502/fullhouse/pkg/scenes"
)

// PopupCanvasName is the canvas of the system popups.
const PopupCanvasName = "SystemPopupCanvas"

// Kernel holds the services that live for the whole process: camera mapper,
// popup canvas and canvas registry. It is built once by NewKernel and passed
// explicitly to whoever needs it.
type Kernel struct {
	Config   *config.DisplayConfig
	Mapper   *camera.Mapper
	Registry *canvas.Registry
	Popup    *game.PopupManager

	PopupCanvas scenes.SceneCanvas
}

// NewKernel builds the kernel from the display config.
func NewKernel(cfg *config.DisplayConfig) (*Kernel, error) {
	k := &Kernel{
		Config:   cfg,
		Mapper:   camera.NewMapper(),
		Registry: canvas.NewRegistry(),
	}

	for _, cc := range cfg.Cameras {
		k.Mapper.Add(cc.Name, &camera.Camera{
			Name:             cc.Name,
			Position:         cc.Vec3(),
			Orthographic:     cc.Orthographic,
			OrthographicSize: cc.OrthographicSize,
			FieldOfView:      cc.FieldOfView,
		})
	}
	k.Mapper.InitCameraData()

	popupCanvas, err := k.NewSceneCanvas(PopupCanvasName)
	if err != nil {
		return nil, fmt.Errorf("popup canvas: %w", err)
	}
	k.PopupCanvas = popupCanvas
	k.Popup = game.NewPopupManager(popupCanvas.Scaler)
	k.Registry.Register(popupCanvas.Canvas, popupCanvas.Scaler)

	log.Printf("[Kernel] %d cameras, popup canvas %s", k.Mapper.Len(), PopupCanvasName)
	return k, nil
}

// NewSceneCanvas creates the canvas and scaler declared under name in the
// display config. An undeclared canvas gets the default scaler settings.
func (k *Kernel) NewSceneCanvas(name string) (scenes.SceneCanvas, error) {
	cc, ok := k.Config.Canvas(name)
	if !ok {
		log.Printf("[Kernel] Warning: canvas %s not configured, using defaults", name)
		cc = config.CanvasConfig{Name: name}
	}

	mode, err := cc.Mode()
	if err != nil {
		return scenes.SceneCanvas{}, fmt.Errorf("canvas %s: %w", name, err)
	}
	settings, err := cc.Scaler.ToSettings()
	if err != nil {
		return scenes.SceneCanvas{}, fmt.Errorf("canvas %s: %w", name, err)
	}

	c := canvas.New(name, mode)
	c.SetTargetDisplay(cc.TargetDisplay)
	scaler := canvas.NewScaler(name, c, settings)
	scaler.SetMainCameraProvider(k.Mapper.Main)
	return scenes.SceneCanvas{Canvas: c, Scaler: scaler}, nil
}

// OnKernelLoaded binds every registered canvas and scaler to the camera named
// after it. Canvases without a camera keep their current one.
func (k *Kernel) OnKernelLoaded() {
	for _, c := range k.Registry.Canvases() {
		cam, err := k.Mapper.ForCanvas(c.Name)
		if err != nil {
			log.Printf("[Kernel] %v", err)
			continue
		}
		c.SetWorldCamera(cam)
	}

	for _, s := range k.Registry.Scalers() {
		cam, err := k.Mapper.ForCanvas(s.Name)
		if err != nil {
			continue
		}
		s.SetWorldCamera(cam)
	}
}

// Destroy resets and unregisters every canvas. The kernel must not be used
// afterwards.
func (k *Kernel) Destroy() {
	for _, s := range k.Registry.Scalers() {
		s.Disable()
	}
	for _, c := range k.Registry.Canvases() {
		k.Registry.Unregister(c)
	}
	k.Popup = nil
	log.Printf("[Kernel] Destroyed")
}
