//go:build !mobile

package utils

import (
	"os"
	"testing"
)

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	original, had := os.LookupEnv(MobileEmulateEnv)
	os.Unsetenv(MobileEmulateEnv)
	defer func() {
		if had {
			os.Setenv(MobileEmulateEnv, original)
		}
	}()

	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
	if dpi := ScreenDPI(2); dpi != 0 {
		t.Errorf("ScreenDPI() = %v on desktop, want 0", dpi)
	}
}

// TestIsMobile_Emulate 测试环境变量强制启用移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")

	if !IsMobile() {
		t.Error("IsMobile() should return true when emulating")
	}

	tests := []struct {
		scale    float64
		expected float64
	}{
		{1, 160},
		{2, 320},
		{3.5, 560},
		{0, 160},
	}
	for _, tt := range tests {
		if got := ScreenDPI(tt.scale); got != tt.expected {
			t.Errorf("ScreenDPI(%v) = %v, want %v", tt.scale, got, tt.expected)
		}
	}
}
