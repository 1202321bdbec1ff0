package menu

import (
	"errors"
	"fmt"
)

var (
	ErrNilEntry        = errors.New("entry is nil")
	ErrAlreadyAttached = errors.New("entry already has a parent")
	ErrCycle           = errors.New("entry cannot be added below itself")
	ErrAliasCycle      = errors.New("alias resolution does not terminate")
	// ErrInternal 菜单树与别名表状态不一致，构建必须立即中止
	ErrInternal = errors.New("internal error")
)

// BuildError 封装构建过程中的错误信息
type BuildError struct {
	Phase Phase
	Path  string
	Name  string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("构建错误 [%s] 阶段 %s 在节点 '%s': %v", e.Path, e.Phase, e.Name, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
