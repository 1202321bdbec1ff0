package menu

// Phase 构建阶段
type Phase int

const (
	PhaseAccelerators Phase = iota // 快捷键
	PhaseActions                   // 动作
	PhaseUI                        // 界面组件
)

func (p Phase) String() string {
	switch p {
	case PhaseAccelerators:
		return "ACCELERATORS"
	case PhaseActions:
		return "ACTIONS"
	case PhaseUI:
		return "UI"
	default:
		return "UNKNOWN"
	}
}

// EntryVisitor 定义了菜单项访问器的接口
type EntryVisitor interface {
	// Visit 访问一个声明了该构建器的菜单项
	Visit(target *Entry) error
	// ShouldSkipChildren 是否跳过该菜单项的子节点
	ShouldSkipChildren(entry *Entry) bool
}

// BuildPhaseListener 在一个构建阶段遍历完整棵树后得到通知
type BuildPhaseListener interface {
	BuildPhaseFinished(phase Phase, root *Entry) error
}

// VisitorFunc 把函数适配为 EntryVisitor，访问后继续进入子节点
type VisitorFunc func(target *Entry) error

// Visit 实现 EntryVisitor 接口
func (f VisitorFunc) Visit(target *Entry) error {
	return f(target)
}

// ShouldSkipChildren 实现 EntryVisitor 接口
func (f VisitorFunc) ShouldSkipChildren(*Entry) bool {
	return false
}

// PhaseListenerFunc 把函数适配为 BuildPhaseListener
type PhaseListenerFunc func(phase Phase, root *Entry) error

// BuildPhaseFinished 实现 BuildPhaseListener 接口
func (f PhaseListenerFunc) BuildPhaseFinished(phase Phase, root *Entry) error {
	return f(phase, root)
}
