package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., lobby, table).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是可选接口，场景成为活动场景后被调用
//
// 场景在这里锁定屏幕方向、注册自己的画布。
type Enterable interface {
	OnEnter()
}

// Exitable 是可选接口，场景被替换前被调用
type Exitable interface {
	OnExit()
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}

// SceneID identifies a loadable scene.
type SceneID int

const (
	SceneUnknown SceneID = -1
	SceneA       SceneID = 0
	SceneB       SceneID = 1
)

// String returns the scene name used in config and save data.
func (id SceneID) String() string {
	switch id {
	case SceneA:
		return "Scene_A"
	case SceneB:
		return "Scene_B"
	case SceneUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("SceneID(%d)", int(id))
	}
}

// ParseSceneID parses a scene name such as "Scene_A". The short forms "A"
// and "B" are accepted.
func ParseSceneID(s string) (SceneID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SCENE_A", "A":
		return SceneA, nil
	case "SCENE_B", "B":
		return SceneB, nil
	}
	return SceneUnknown, fmt.Errorf("unknown scene: %q", s)
}

// SceneSpec is the per-scene display setup applied before the scene loads.
type SceneSpec struct {
	Width       int
	Height      int
	Orientation Orientation
}
