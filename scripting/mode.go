package scripting

import (
	"fmt"
	"strings"
)

// ExecutionMode 脚本的执行模式
type ExecutionMode int

const (
	OnSingleNode ExecutionMode = iota
	OnSelectedNode
	OnSelectedNodeRecursively
)

// AllExecutionModes 按显示顺序列出所有执行模式
var AllExecutionModes = []ExecutionMode{OnSingleNode, OnSelectedNode, OnSelectedNodeRecursively}

func (m ExecutionMode) String() string {
	switch m {
	case OnSingleNode:
		return "ON_SINGLE_NODE"
	case OnSelectedNode:
		return "ON_SELECTED_NODE"
	case OnSelectedNodeRecursively:
		return "ON_SELECTED_NODE_RECURSIVELY"
	default:
		return fmt.Sprintf("ExecutionMode(%d)", int(m))
	}
}

// Key 返回执行模式标题的消息 ID，模板参数为 Script
func (m ExecutionMode) Key() string {
	switch m {
	case OnSingleNode:
		return "Execute {{.Script}} on one selected node"
	case OnSelectedNode:
		return "Execute {{.Script}} on all selected nodes"
	case OnSelectedNodeRecursively:
		return "Execute {{.Script}} on all selected nodes, recursively"
	default:
		return m.String()
	}
}

// ParseExecutionMode 解析执行模式名称，忽略大小写和 "ExecutionMode." 前缀
func ParseExecutionMode(s string) (ExecutionMode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "EXECUTIONMODE.")
	for _, mode := range AllExecutionModes {
		if mode.String() == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown execution mode: %q", s)
}

// MarshalText 以名称序列化，供 YAML/JSON 使用
func (m ExecutionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText 从名称解析
func (m *ExecutionMode) UnmarshalText(text []byte) error {
	mode, err := ParseExecutionMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
