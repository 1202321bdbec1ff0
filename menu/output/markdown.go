package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sjzsdu/scriptmenu/menu"
)

// MarkdownExporter 把菜单导出为嵌套的 Markdown 列表
type MarkdownExporter struct {
	Heading string
}

// NewMarkdownExporter 创建 Markdown 导出器
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{Heading: "Menu"}
}

// Export 实现 Exporter 接口
func (m *MarkdownExporter) Export(root *menu.Entry, w io.Writer) error {
	_, err := io.WriteString(w, m.Render(root))
	return err
}

// Render 返回 Markdown 文本
func (m *MarkdownExporter) Render(root *menu.Entry) string {
	var sb strings.Builder
	if m.Heading != "" {
		fmt.Fprintf(&sb, "# %s\n\n", m.Heading)
	}
	if root == nil {
		return sb.String()
	}
	for _, child := range root.Children() {
		writeMarkdownEntry(&sb, child, 0)
	}
	return sb.String()
}

func writeMarkdownEntry(sb *strings.Builder, entry *menu.Entry, level int) {
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteString("- ")
	if entry.ChildCount() > 0 {
		fmt.Fprintf(sb, "**%s**", escapeMarkdown(entry.Title()))
	} else {
		sb.WriteString(escapeMarkdown(entry.Title()))
	}
	if !entry.Enabled() {
		sb.WriteString(" _(disabled)_")
	}
	sb.WriteString("\n")

	for _, child := range entry.Children() {
		writeMarkdownEntry(sb, child, level+1)
	}
}

var markdownEscaper = strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`", "[", "\\[", "]", "\\]")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
