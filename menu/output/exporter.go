package output

import (
	"io"

	"github.com/sjzsdu/scriptmenu/menu"
)

// Exporter 把菜单树导出为某种文档格式
type Exporter interface {
	Export(root *menu.Entry, w io.Writer) error
}

// ExporterFunc 把函数适配为 Exporter
type ExporterFunc func(root *menu.Entry, w io.Writer) error

// Export 实现 Exporter 接口
func (f ExporterFunc) Export(root *menu.Entry, w io.Writer) error {
	return f(root, w)
}
