package menu

import (
	"fmt"

	"github.com/sjzsdu/scriptmenu/helper"
)

// TitleFunc 把路径段名称转换为显示标题
type TitleFunc func(name string) string

// FindOrCreate 返回 path 对应的节点，缺失的中间节点按需创建
//
// path 先经过别名改写，新节点的 Name 为路径段，text 属性为 titleFn(段)，不绑定动作。
// 重复调用返回同一个节点。
func FindOrCreate(nav *Navigator, root *Entry, path string, titleFn TitleFunc) (*Entry, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root entry is nil", ErrInternal)
	}
	if nav == nil {
		nav = NewNavigator()
	}
	resolved, err := nav.Resolve(path)
	if err != nil {
		return nil, err
	}
	return findOrCreate(root, resolved, titleFn)
}

func findOrCreate(root *Entry, path string, titleFn TitleFunc) (*Entry, error) {
	// 没有剩余的路径段时返回根节点
	if path == "" {
		return root, nil
	}
	if entry := findByCanonicalPath(root, path); entry != nil {
		return entry, nil
	}

	parent, err := findOrCreate(root, helper.ParentMenuPath(path), titleFn)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: cannot add entry for %s", ErrInternal, path)
	}

	name := helper.LastMenuPathElement(path)
	entry := NewEntry(name)
	if titleFn != nil {
		entry.SetAttribute(AttrText, titleFn(name))
	}
	if err := parent.AddChild(entry); err != nil {
		return nil, fmt.Errorf("%w: cannot add entry for %s: %v", ErrInternal, path, err)
	}
	return entry, nil
}
