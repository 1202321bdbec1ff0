package helper

import (
	"os"
	"path/filepath"

	"github.com/sjzsdu/scriptmenu/share"
)

// GetPath 返回用户目录下 .scriptmenu 中的文件路径，name 为空时返回目录本身
func GetPath(name string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	base := filepath.Join(homeDir, share.PATH)
	if name == "" {
		return base
	}
	return filepath.Join(base, name)
}

// WriteFile 写入文件，必要时创建父目录
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
