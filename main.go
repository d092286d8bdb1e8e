package main

import (
	"flag"
	"log"

	"github.com/decker502/fullhouse/pkg/app"
	"github.com/decker502/fullhouse/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	scene   = flag.String("scene", "", "启动场景（Scene_A 或 Scene_B），为空则使用上次退出的场景")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		StartScene: *scene,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	// 窗口关闭时 App.Update 保存设置并返回 ebiten.Termination
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
