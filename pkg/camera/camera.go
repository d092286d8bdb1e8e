// Package camera 提供命名摄像机及其映射表
//
// 每个 UI 画布按名称绑定到一台摄像机：画布名去掉 "Canvas" 后缀即为摄像机映射名，
// 例如 "SystemPopupCanvas" 对应映射 "SystemPopup"。
package camera

import (
	"math"

	"github.com/decker502/fullhouse/pkg/utils"
)

// Camera describes the projection of one named camera.
// Position is in world space; LocalPosition is relative to the parent rig.
type Camera struct {
	Name             string
	Position         utils.Vec3
	LocalPosition    utils.Vec3
	Orthographic     bool
	OrthographicSize float64 // half of the visible height
	FieldOfView      float64 // vertical, degrees
}

// ViewHeight returns the world-space height visible by the camera at the
// given target position.
//
// 正交摄像机：高度 = orthographicSize * 2
// 透视摄像机：高度 = 2 * 距离 * tan(fov/2)
func (c *Camera) ViewHeight(target utils.Vec3) float64 {
	if c.Orthographic {
		return c.OrthographicSize * 2
	}
	return PerspectiveHeight(c.Position, target, c.FieldOfView)
}

// PerspectiveHeight returns the height of the frustum slice at target for a
// perspective camera at eye with the given vertical field of view.
func PerspectiveHeight(eye, target utils.Vec3, fov float64) float64 {
	return 2.0 * utils.Distance(eye, target) * math.Tan(fov*0.5*math.Pi/180)
}
