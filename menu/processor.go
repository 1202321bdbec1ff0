package menu

import (
	"fmt"
)

// ProgressCallback 每访问一个菜单项后的回调
type ProgressCallback func(phase Phase, visited int, path string)

type builderKey struct {
	phase Phase
	name  string
}

// Processor 按阶段遍历菜单树，把声明了构建器的菜单项分派给对应的访问器
type Processor struct {
	phases    []Phase
	builders  map[builderKey][]EntryVisitor
	listeners []BuildPhaseListener
	progress  ProgressCallback
	visited   int
}

// NewProcessor 创建处理器，未指定阶段时依次执行 ACCELERATORS、ACTIONS、UI
func NewProcessor(phases ...Phase) *Processor {
	if len(phases) == 0 {
		phases = []Phase{PhaseAccelerators, PhaseActions, PhaseUI}
	}
	return &Processor{
		phases:   phases,
		builders: make(map[builderKey][]EntryVisitor),
	}
}

// AddBuilder 为某阶段注册一个命名构建器
func (p *Processor) AddBuilder(phase Phase, name string, visitor EntryVisitor) *Processor {
	key := builderKey{phase: phase, name: name}
	p.builders[key] = append(p.builders[key], visitor)
	return p
}

// AddPhaseListener 注册阶段完成监听器
func (p *Processor) AddPhaseListener(listener BuildPhaseListener) *Processor {
	p.listeners = append(p.listeners, listener)
	return p
}

// WithProgressCallback 设置进度回调函数
func (p *Processor) WithProgressCallback(callback ProgressCallback) *Processor {
	p.progress = callback
	return p
}

// Visited 返回最近一次构建访问的菜单项数量
func (p *Processor) Visited() int {
	return p.visited
}

// Build 依次执行所有阶段，遇到第一个错误立即中止
func (p *Processor) Build(root *Entry) error {
	if root == nil {
		return ErrNilEntry
	}
	p.visited = 0

	for _, phase := range p.phases {
		if err := p.traverse(phase, root); err != nil {
			return err
		}
		for _, listener := range p.listeners {
			if err := listener.BuildPhaseFinished(phase, root); err != nil {
				return &BuildError{
					Phase: phase,
					Path:  root.Path(),
					Name:  root.Name,
					Err:   err,
				}
			}
		}
	}
	return nil
}

// traverse 前序遍历，子节点在访问之后读取，因此访问器新加的子节点也会被看到
func (p *Processor) traverse(phase Phase, entry *Entry) error {
	skipChildren := false

	for _, name := range entry.Builders() {
		for _, visitor := range p.builders[builderKey{phase: phase, name: name}] {
			if err := visitor.Visit(entry); err != nil {
				return &BuildError{
					Phase: phase,
					Path:  entry.Path(),
					Name:  entry.Name,
					Err:   err,
				}
			}
			if visitor.ShouldSkipChildren(entry) {
				skipChildren = true
			}
		}
	}

	p.visited++
	if p.progress != nil {
		p.progress(phase, p.visited, entry.Path())
	}

	if skipChildren {
		return nil
	}
	for _, child := range entry.Children() {
		if err := p.traverse(phase, child); err != nil {
			return err
		}
	}
	return nil
}

// String 便于日志输出
func (p *Processor) String() string {
	return fmt.Sprintf("Processor(phases=%v, builders=%d, listeners=%d)", p.phases, len(p.builders), len(p.listeners))
}
