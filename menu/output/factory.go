package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/scriptmenu/menu"
)

// Output 将菜单树导出为指定格式的文件
func Output(root *menu.Entry, outputFile string) error {
	exporter, err := GetExporter(outputFile)
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("创建输出文件失败 %s: %w", outputFile, err)
	}
	defer file.Close()

	if err := exporter.Export(root, file); err != nil {
		return fmt.Errorf("导出到 %s 失败: %w", outputFile, err)
	}
	return file.Sync()
}

// GetExporter 根据输出文件类型返回对应的导出器
func GetExporter(outputFile string) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".md":
		return NewMarkdownExporter(), nil
	case ".json":
		return NewJSONExporter(), nil
	case ".pdf":
		return NewPDFExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(outputFile))
	}
}
