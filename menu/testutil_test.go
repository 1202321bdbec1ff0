package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stubAction 测试用动作
type stubAction struct {
	key     string
	enabled bool
}

func (a stubAction) Key() string     { return a.key }
func (a stubAction) Enabled() bool   { return a.enabled }
func (a stubAction) Tooltip() string { return "tip " + a.key }
func (a stubAction) Icon() string    { return "" }

// buildTree 按路径列表构建测试用菜单树
func buildTree(t *testing.T, paths ...string) *Entry {
	t.Helper()
	root := NewEntry("")
	for _, path := range paths {
		_, err := FindOrCreate(nil, root, path, nil)
		require.NoError(t, err)
	}
	return root
}
