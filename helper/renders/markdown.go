package renders

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 使用 glamour 把 Markdown 渲染为终端文本
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器，wordWrap <= 0 时使用 120
func NewMarkdownRenderer(wordWrap int) (*MarkdownRenderer, error) {
	if wordWrap <= 0 {
		wordWrap = 120
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %v", err)
	}
	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染 Markdown 内容
func (m *MarkdownRenderer) Render(content string) (string, error) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return "", err
	}
	// 将连续的多个空行替换为单个空行
	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	return rendered, nil
}

// RenderTo 渲染并写入 w，渲染失败时输出原始内容
func (m *MarkdownRenderer) RenderTo(w io.Writer, content string) error {
	rendered, err := m.Render(content)
	if err != nil {
		_, werr := io.WriteString(w, content)
		return werr
	}
	_, err = io.WriteString(w, rendered)
	return err
}
