package helper

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
)

// CloneRepository 克隆指定的Git仓库到临时目录并返回克隆的路径
// progress 为 nil 时不输出克隆进度
func CloneRepository(gitURL string, progress io.Writer) (string, error) {
	// 创建临时目录
	tempDir, err := os.MkdirTemp("", "scriptmenu-clone-")
	if err != nil {
		return "", fmt.Errorf("创建临时目录失败: %w", err)
	}

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:      gitURL,
		Progress: progress,
	})
	if err != nil {
		os.RemoveAll(tempDir) // 清理临时目录
		return "", fmt.Errorf("克隆仓库失败: %w", err)
	}

	return tempDir, nil
}
