package camera

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/decker502/fullhouse/pkg/utils"
)

// CanvasSuffix is stripped from canvas names to get the camera map name.
const CanvasSuffix = "Canvas"

// ErrCameraNotFound is returned when no camera map matches a name.
var ErrCameraNotFound = errors.New("camera not found")

// Type identifies a camera role in the mapper by its map name.
type Type int

const (
	// Popup is the camera that renders system popups.
	Popup Type = iota
)

// String returns the map name of the camera type.
func (t Type) String() string {
	switch t {
	case Popup:
		return "SystemPopup"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Map binds a name to a camera.
type Map struct {
	Name   string
	Camera *Camera
}

// Mapper holds the ordered camera maps shared by every scene.
type Mapper struct {
	maps []Map
}

// NewMapper creates a mapper from the given maps, in order.
func NewMapper(maps ...Map) *Mapper {
	m := &Mapper{}
	for _, entry := range maps {
		m.Add(entry.Name, entry.Camera)
	}
	return m
}

// Add appends a camera map. A later map with the same name never shadows the
// first one, lookups return the first match.
func (m *Mapper) Add(name string, cam *Camera) {
	m.maps = append(m.maps, Map{Name: name, Camera: cam})
}

// Len returns the number of camera maps.
func (m *Mapper) Len() int {
	return len(m.maps)
}

// Maps returns a copy of the camera maps.
func (m *Mapper) Maps() []Map {
	out := make([]Map, len(m.maps))
	copy(out, m.maps)
	return out
}

// Main returns the first mapped camera, or nil when the mapper is empty.
func (m *Mapper) Main() *Camera {
	if len(m.maps) == 0 {
		return nil
	}
	return m.maps[0].Camera
}

// Find returns the camera mapped under name.
func (m *Mapper) Find(name string) (*Camera, error) {
	for _, entry := range m.maps {
		if entry.Name == name {
			if entry.Camera == nil {
				break
			}
			return entry.Camera, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCameraNotFound, name)
}

// ForCanvas returns the camera for a canvas, looked up by the canvas name
// without its "Canvas" suffix.
func (m *Mapper) ForCanvas(canvasName string) (*Camera, error) {
	return m.Find(MapName(canvasName))
}

// MapName strips the "Canvas" suffix from a canvas name.
func MapName(canvasName string) string {
	return strings.TrimSuffix(canvasName, CanvasSuffix)
}

// PopupCamera returns the camera used by system popups, or nil.
func (m *Mapper) PopupCamera() *Camera {
	cam, err := m.Find(Popup.String())
	if err != nil {
		return nil
	}
	return cam
}

// InitCameraData moves every camera back to the rig origin.
func (m *Mapper) InitCameraData() {
	for _, entry := range m.maps {
		if entry.Camera != nil {
			entry.Camera.LocalPosition = utils.Vec3{}
		}
	}
}

// SetProjection switches the camera of the given type between perspective
// and orthographic projection.
//
// 透视切换为正交时，按当前距离和视野计算 orthographicSize，保持画面大小不变。
func (m *Mapper) SetProjection(t Type, orthographic bool) {
	cam, err := m.Find(t.String())
	if err != nil {
		log.Printf("[CameraMapper] SetProjection ignored: %v", err)
		return
	}
	if !cam.Orthographic && orthographic {
		cam.OrthographicSize = math.Abs(cam.Position.Z) * math.Tan(cam.FieldOfView*0.5*math.Pi/180)
	}
	cam.Orthographic = orthographic
}

// ResetProjection puts every camera back into perspective projection.
func (m *Mapper) ResetProjection() {
	for _, entry := range m.maps {
		if entry.Camera != nil {
			entry.Camera.Orthographic = false
		}
	}
}
