//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	mkdir -p mobile/data && cp -r data/config mobile/data/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.fullhouse -o build/android/fullhouse.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	mkdir -p mobile/data && cp -r data/config mobile/data/ && ebitenmobile bind -target ios -tags mobile -o build/ios/FullHouse.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/fullhouse/pkg/app"
	"github.com/decker502/fullhouse/pkg/embedded"
)

var gameApp *app.App

func init() {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var err error
	gameApp, err = app.NewApp(app.Config{
		Verbose: true, // Enable verbose logging for debugging
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Suspend 在应用进入后台时由宿主调用，保存当前场景与设置
// 移动端没有窗口关闭事件，进入后台是最后可靠的保存时机
func Suspend() {
	if gameApp != nil {
		gameApp.SaveOnExit()
	}
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
