package output

import (
	"encoding/json"
	"io"

	"github.com/sjzsdu/scriptmenu/menu"
)

// JSONEntry 菜单项的 JSON 表示
type JSONEntry struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Path     string       `json:"path"`
	Action   string       `json:"action,omitempty"`
	Enabled  bool         `json:"enabled"`
	Tooltip  string       `json:"tooltip,omitempty"`
	Icon     string       `json:"icon,omitempty"`
	Children []*JSONEntry `json:"children,omitempty"`
}

// JSONExporter 把菜单导出为嵌套 JSON
type JSONExporter struct {
	Indent string
}

// NewJSONExporter 创建 JSON 导出器
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{Indent: "  "}
}

// Export 实现 Exporter 接口
func (j *JSONExporter) Export(root *menu.Entry, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", j.Indent)
	return encoder.Encode(ToJSONEntry(root))
}

// ToJSONEntry 把菜单树转换为可序列化的结构
func ToJSONEntry(entry *menu.Entry) *JSONEntry {
	if entry == nil {
		return nil
	}
	result := &JSONEntry{
		Name:    entry.Name,
		Title:   entry.Title(),
		Path:    entry.Path(),
		Enabled: entry.Enabled(),
		Tooltip: entry.Tooltip(),
		Icon:    entry.Icon(),
	}
	if action := entry.Action(); action != nil {
		result.Action = action.Key()
	}
	for _, child := range entry.Children() {
		result.Children = append(result.Children, ToJSONEntry(child))
	}
	return result
}
