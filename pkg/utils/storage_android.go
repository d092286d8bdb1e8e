//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 是应用私有数据目录的父目录
const androidDataRoot = "/data/data"

// EnsureStorageDir 在 gdata 打开之前创建 /data/data/{package}/saves。
// gdata 在 Android 上使用应用私有目录，但不会预先创建子目录。
func EnsureStorageDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("read process cmdline: %w", err)
	}
	pkg, err := packageName(cmdline)
	if err != nil {
		return "", fmt.Errorf("detect Android package: %w", err)
	}
	return prepareSaveDir(filepath.Join(androidDataRoot, pkg))
}
