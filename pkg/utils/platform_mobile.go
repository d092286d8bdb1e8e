//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// ScreenDPI 返回屏幕 DPI，由设备缩放系数换算
func ScreenDPI(deviceScaleFactor float64) float64 {
	return mobileDPI(deviceScaleFactor)
}
