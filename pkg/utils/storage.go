package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SaveDirName 是应用数据目录下存放设置文件的子目录
const SaveDirName = "saves"

// errEmptyCmdline /proc/self/cmdline 中没有进程名
var errEmptyCmdline = errors.New("empty process cmdline")

// packageName 从 /proc/self/cmdline 的内容中取出进程名（第一个 NUL 分隔的参数）。
// Android 应用进程名即包名，多进程应用的 ":service" 后缀会被去掉。
func packageName(cmdline []byte) (string, error) {
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	name = bytes.TrimSpace(name)
	if i := bytes.IndexByte(name, ':'); i >= 0 {
		name = name[:i]
	}
	if len(name) == 0 {
		return "", errEmptyCmdline
	}
	return string(name), nil
}

// prepareSaveDir 创建 root/SaveDirName 并确认可写，返回目录路径
func prepareSaveDir(root string) (string, error) {
	dir := filepath.Join(root, SaveDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return "", fmt.Errorf("save dir %s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return dir, nil
}
