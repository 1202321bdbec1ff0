package scripting

import (
	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/share"
)

// ModeSelector 提供当前选中的执行模式
type ModeSelector interface {
	ExecutionMode() ExecutionMode
}

// ModeSelectorFunc 函数适配器
type ModeSelectorFunc func() ExecutionMode

func (f ModeSelectorFunc) ExecutionMode() ExecutionMode {
	return f()
}

// StaticModeSelector 始终返回同一个执行模式
type StaticModeSelector ExecutionMode

func (s StaticModeSelector) ExecutionMode() ExecutionMode {
	return ExecutionMode(s)
}

// ConfigModeSelector 读取 mode 配置项，未配置或无法解析时使用 OnSingleNode
type ConfigModeSelector struct{}

func (ConfigModeSelector) ExecutionMode() ExecutionMode {
	value := config.GetConfig(config.KeyMode)
	if value == "" {
		return OnSingleNode
	}
	mode, err := ParseExecutionMode(value)
	if err != nil {
		share.Logger().Warn("invalid execution mode in config", "value", value)
		return OnSingleNode
	}
	return mode
}
