package menu

import (
	"strings"
)

// 常用属性键
const (
	AttrText    = "text"    // 显示标题
	AttrBuilder = "builder" // 逗号分隔的构建器名称，由 Processor 分派
)

// Action 菜单项绑定的动作，菜单树只读取这些信息
type Action interface {
	Key() string
	Enabled() bool
	Tooltip() string
	Icon() string
}

// Entry 菜单树中的一个节点
type Entry struct {
	Name       string
	attributes map[string]any
	action     Action
	icon       string
	parent     *Entry
	children   []*Entry
}

// NewEntry 创建一个新的菜单项
func NewEntry(name string) *Entry {
	return &Entry{
		Name:       name,
		attributes: make(map[string]any),
	}
}

// AddChild 追加子节点并设置其父节点
func (e *Entry) AddChild(child *Entry) error {
	if child == nil {
		return ErrNilEntry
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	// 禁止把祖先挂到自己下面
	for p := e; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	child.parent = e
	e.children = append(e.children, child)
	return nil
}

// Parent 返回父节点，根节点返回 nil
func (e *Entry) Parent() *Entry {
	return e.parent
}

// Children 返回子节点的副本，顺序即显示顺序
func (e *Entry) Children() []*Entry {
	children := make([]*Entry, len(e.children))
	copy(children, e.children)
	return children
}

// ChildCount 返回直接子节点数量
func (e *Entry) ChildCount() int {
	return len(e.children)
}

// Child 按名称查找直接子节点，同名时返回第一个
func (e *Entry) Child(name string) *Entry {
	for _, child := range e.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Root 沿父链找到根节点
func (e *Entry) Root() *Entry {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsRoot 是否为根节点
func (e *Entry) IsRoot() bool {
	return e.parent == nil
}

// Path 返回从根（不含）到当前节点的名称路径，根节点为空串
func (e *Entry) Path() string {
	if e.parent == nil {
		return ""
	}
	var names []string
	for current := e; current.parent != nil; current = current.parent {
		names = append(names, current.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// Depth 返回节点深度，根节点为 0
func (e *Entry) Depth() int {
	depth := 0
	for current := e; current.parent != nil; current = current.parent {
		depth++
	}
	return depth
}

// SetAttribute 设置属性
func (e *Entry) SetAttribute(key string, value any) {
	if e.attributes == nil {
		e.attributes = make(map[string]any)
	}
	e.attributes[key] = value
}

// Attribute 读取属性
func (e *Entry) Attribute(key string) (any, bool) {
	value, ok := e.attributes[key]
	return value, ok
}

// StringAttribute 读取字符串属性，不存在或类型不符时返回空串
func (e *Entry) StringAttribute(key string) string {
	if value, ok := e.attributes[key].(string); ok {
		return value
	}
	return ""
}

// Attributes 返回属性的副本
func (e *Entry) Attributes() map[string]any {
	attrs := make(map[string]any, len(e.attributes))
	for k, v := range e.attributes {
		attrs[k] = v
	}
	return attrs
}

// Title 返回显示标题：text 属性优先，其次为动作的 key，最后为名称
func (e *Entry) Title() string {
	if text := e.StringAttribute(AttrText); text != "" {
		return text
	}
	if e.action != nil {
		if t, ok := e.action.(interface{ Title() string }); ok && t.Title() != "" {
			return t.Title()
		}
	}
	return e.Name
}

// Builders 返回 builder 属性中声明的构建器名称
func (e *Entry) Builders() []string {
	raw := e.StringAttribute(AttrBuilder)
	if raw == "" {
		return nil
	}
	var builders []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			builders = append(builders, name)
		}
	}
	return builders
}

// SetAction 绑定动作
func (e *Entry) SetAction(action Action) {
	e.action = action
}

// Action 返回绑定的动作，可能为 nil
func (e *Entry) Action() Action {
	return e.action
}

// SetIcon 设置图标引用
func (e *Entry) SetIcon(icon string) {
	e.icon = icon
}

// Icon 返回图标引用
func (e *Entry) Icon() string {
	return e.icon
}

// Enabled 没有动作的菜单项总是可用
func (e *Entry) Enabled() bool {
	return e.action == nil || e.action.Enabled()
}

// Tooltip 返回动作的提示文本
func (e *Entry) Tooltip() string {
	if e.action == nil {
		return ""
	}
	return e.action.Tooltip()
}

// Walk 前序遍历以当前节点为根的子树，fn 返回 false 时不再进入该节点的子节点
func (e *Entry) Walk(fn func(entry *Entry) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children() {
		child.Walk(fn)
	}
}

// CountEntries 计算节点及其子节点的总数
func (e *Entry) CountEntries() int {
	if e == nil {
		return 0
	}
	count := 1
	for _, child := range e.children {
		count += child.CountEntries()
	}
	return count
}
