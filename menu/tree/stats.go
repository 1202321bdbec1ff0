package tree

import (
	"fmt"

	"github.com/sjzsdu/scriptmenu/menu"
)

// Statistics 菜单树的统计信息
type Statistics struct {
	TotalEntries  int // 总节点数
	SubmenuCount  int // 含子节点的菜单数量
	ActionCount   int // 绑定了动作的菜单项数量
	DisabledCount int // 禁用的菜单项数量
	MaxDepth      int // 最大深度
}

// Stats 返回菜单树的统计信息
func Stats(root *menu.Entry) Statistics {
	if root == nil {
		return Statistics{}
	}

	stats := Statistics{}
	collectStats(root, 0, &stats)
	return stats
}

// collectStats 递归收集统计信息
func collectStats(entry *menu.Entry, depth int, stats *Statistics) {
	stats.TotalEntries++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if entry.ChildCount() > 0 {
		stats.SubmenuCount++
	}
	if entry.Action() != nil {
		stats.ActionCount++
	}
	if !entry.Enabled() {
		stats.DisabledCount++
	}
	for _, child := range entry.Children() {
		collectStats(child, depth+1, stats)
	}
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("%d submenus, %d actions (%d disabled), depth %d",
		s.SubmenuCount, s.ActionCount, s.DisabledCount, s.MaxDepth)
}
