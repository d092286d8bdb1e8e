package config

// 加载弹窗配置常量

const (
	// LoadingPopupHoldSeconds 新场景激活后加载弹窗继续显示的时间（秒）
	LoadingPopupHoldSeconds float64 = 3.0

	// LoadProgressBase 场景工厂开始运行时上报的进度
	LoadProgressBase float64 = 0.8

	// LoadProgressSpan 场景工厂自身进度在总进度中所占的区间
	LoadProgressSpan float64 = 0.1

	// LoadingTextFontSize 加载文字字体大小
	LoadingTextFontSize float64 = 28

	// LoadingBarWidthRatio 进度条宽度占弹窗图层宽度的比例
	LoadingBarWidthRatio float64 = 0.6

	// LoadingBarHeight 进度条高度
	LoadingBarHeight float64 = 16

	// LoadingOverlayAlpha 背景遮罩透明度 (0-255)
	LoadingOverlayAlpha uint8 = 180
)
