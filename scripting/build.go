package scripting

import (
	"github.com/sjzsdu/scriptmenu/menu"
)

// BuildMenu 在骨架 root 上运行所有构建阶段，把脚本挂到菜单中
func BuildMenu(root *menu.Entry, provider Provider, selector ModeSelector, opts ...Option) (*MenuEntryVisitor, error) {
	visitor := NewMenuEntryVisitor(provider, selector, opts...)
	processor := menu.NewProcessor().
		AddBuilder(menu.PhaseActions, BuilderName, visitor).
		AddPhaseListener(visitor).
		WithProgressCallback(func(phase menu.Phase, visited int, path string) {
			visitor.logger.Debug("访问菜单项", "phase", phase, "visited", visited, "path", path)
		})
	err := processor.Build(root)
	visitor.visited = processor.Visited()
	return visitor, err
}
