//go:build ignore

// validate_display_config 检查 data/config/display.yaml
//
// 用法：go run tools/validate_display_config.go
package main

import (
	"fmt"
	"os"

	"github.com/decker502/fullhouse/pkg/config"
)

func main() {
	data, err := os.ReadFile(config.DisplayConfigPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseDisplayConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 场景数量: %d，相机数量: %d，画布数量: %d\n", len(cfg.Scenes), len(cfg.Cameras), len(cfg.Canvases))

	missing := 0
	for _, s := range cfg.Scenes {
		if _, ok := cfg.Canvas(s.Canvas); !ok {
			fmt.Printf("❌ 场景 %s 的画布 %s 未声明\n", s.ID, s.Canvas)
			missing++
		}
	}
	if _, ok := cfg.Canvas("SystemPopupCanvas"); !ok {
		fmt.Printf("❌ 缺少 SystemPopupCanvas\n")
		missing++
	}

	if missing == 0 {
		fmt.Printf("✅ 所有场景画布都已声明\n")
	} else {
		fmt.Printf("❌ 有 %d 个画布缺失\n", missing)
		os.Exit(1)
	}
}
