package utils

// BaselineDPI 是设备缩放系数为 1 时的移动端屏幕密度（Android mdpi）
const BaselineDPI = 160.0

func mobileDPI(deviceScaleFactor float64) float64 {
	if deviceScaleFactor <= 0 {
		deviceScaleFactor = 1
	}
	return BaselineDPI * deviceScaleFactor
}
