//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端处理（用于本地调试屏幕方向与 DPI）
const MobileEmulateEnv = "FULLHOUSE_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

// ScreenDPI 返回屏幕 DPI
// 桌面端无法可靠获取 DPI，返回 0，由画布缩放器使用回退 DPI
func ScreenDPI(deviceScaleFactor float64) float64 {
	if IsMobile() {
		return mobileDPI(deviceScaleFactor)
	}
	return 0
}
