package tree

import (
	"strings"

	"github.com/sjzsdu/scriptmenu/menu"
)

// Tree 生成菜单树的字符串表示，类似于 Unix tree 命令
func Tree(root *menu.Entry) string {
	return TreeWithOptions(root, true, 0)
}

// TreeWithOptions 生成带选项的树状结构，maxDepth <= 0 表示不限制深度
func TreeWithOptions(root *menu.Entry, showDisabled bool, maxDepth int) string {
	if root == nil {
		return ""
	}

	var result strings.Builder
	buildTree(root, &result, "", true, true, showDisabled, 0, maxDepth)
	return result.String()
}

// label 返回节点的显示文本
func label(entry *menu.Entry, isRoot bool) string {
	if isRoot && entry.Name == "" {
		return "." // 根节点显示为 "."
	}

	text := entry.Title()
	if entry.ChildCount() > 0 {
		text += "/"
	}
	if !entry.Enabled() {
		text += " (disabled)"
	}
	return text
}

// buildTree 递归构建树状结构
func buildTree(entry *menu.Entry, result *strings.Builder, prefix string, isLast bool, isRoot bool,
	showDisabled bool, currentDepth int, maxDepth int) {

	// 构建当前节点的显示
	if !isRoot {
		if isLast {
			result.WriteString(prefix + "└── ")
		} else {
			result.WriteString(prefix + "├── ")
		}
	}
	result.WriteString(label(entry, isRoot))
	result.WriteString("\n")

	// 检查深度限制
	if maxDepth > 0 && currentDepth >= maxDepth {
		return
	}

	// 菜单顺序即插入顺序，不排序
	children := make([]*menu.Entry, 0, entry.ChildCount())
	for _, child := range entry.Children() {
		if !showDisabled && !child.Enabled() {
			continue
		}
		children = append(children, child)
	}

	// 构建新的前缀
	var newPrefix string
	if isRoot {
		newPrefix = ""
	} else if isLast {
		newPrefix = prefix + "    "
	} else {
		newPrefix = prefix + "│   "
	}

	for i, child := range children {
		buildTree(child, result, newPrefix, i == len(children)-1, false,
			showDisabled, currentDepth+1, maxDepth)
	}
}
