package scripting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/menu"
)

// NoScriptsAvailableKey 没有脚本时占位菜单项的名称
const NoScriptsAvailableKey = "NoScriptsAvailableAction"

var (
	ErrActionDisabled = errors.New("action is disabled")
	ErrNoRunner       = errors.New("no script runner configured")
)

// RunRequest 执行脚本所需的全部信息
type RunRequest struct {
	ScriptName   string
	ScriptPath   string
	Mode         ExecutionMode
	CacheContent bool
	Permissions  Permissions
}

// Runner 执行脚本，具体的脚本引擎由调用方提供
type Runner interface {
	Run(ctx context.Context, req RunRequest) error
}

// RunnerFunc 函数适配器
type RunnerFunc func(ctx context.Context, req RunRequest) error

func (f RunnerFunc) Run(ctx context.Context, req RunRequest) error {
	return f(ctx, req)
}

// ActionRequest 构造脚本动作所需的参数
type ActionRequest struct {
	ScriptName   string
	ScriptPath   string
	Title        string
	Tooltip      string
	Icon         string
	Mode         ExecutionMode
	CacheContent bool
	Permissions  Permissions
	Enabled      bool
}

// ActionFactory 把脚本参数转换成菜单动作
type ActionFactory func(req ActionRequest) menu.Action

// ActionKey 返回脚本在某执行模式下的动作键
func ActionKey(scriptName string, mode ExecutionMode) string {
	return fmt.Sprintf("ExecuteScriptAction.%s.%s", scriptName, mode)
}

// ScriptAction 执行一个脚本的菜单动作
type ScriptAction struct {
	req ActionRequest
	key string
}

// NewScriptAction 默认的 ActionFactory
func NewScriptAction(req ActionRequest) menu.Action {
	return &ScriptAction{
		req: req,
		key: ActionKey(req.ScriptName, req.Mode),
	}
}

func (a *ScriptAction) Key() string        { return a.key }
func (a *ScriptAction) Enabled() bool      { return a.req.Enabled }
func (a *ScriptAction) Tooltip() string    { return a.req.Tooltip }
func (a *ScriptAction) Icon() string       { return a.req.Icon }
func (a *ScriptAction) Title() string      { return a.req.Title }
func (a *ScriptAction) ScriptName() string { return a.req.ScriptName }
func (a *ScriptAction) ScriptPath() string { return a.req.ScriptPath }
func (a *ScriptAction) Mode() ExecutionMode {
	return a.req.Mode
}

// Request 返回构造该动作时的参数
func (a *ScriptAction) Request() ActionRequest {
	return a.req
}

// Perform 通过 runner 执行脚本
func (a *ScriptAction) Perform(ctx context.Context, runner Runner) error {
	if !a.req.Enabled {
		return fmt.Errorf("%w: %s", ErrActionDisabled, a.key)
	}
	if runner == nil {
		return ErrNoRunner
	}
	return runner.Run(ctx, RunRequest{
		ScriptName:   a.req.ScriptName,
		ScriptPath:   a.req.ScriptPath,
		Mode:         a.req.Mode,
		CacheContent: a.req.CacheContent,
		Permissions:  a.req.Permissions,
	})
}

// noScriptsAction 占位动作，始终禁用
type noScriptsAction struct{}

func (noScriptsAction) Key() string     { return NoScriptsAvailableKey }
func (noScriptsAction) Enabled() bool   { return false }
func (noScriptsAction) Tooltip() string { return "" }
func (noScriptsAction) Icon() string    { return "" }
func (noScriptsAction) Title() string   { return lang.T("No scripts available") }
