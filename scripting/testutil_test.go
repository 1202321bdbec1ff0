package scripting

import (
	"testing"

	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/sjzsdu/scriptmenu/menu/loader"
	"github.com/stretchr/testify/require"
)

// skeleton 返回默认菜单骨架及其中的 scripts 节点
func skeleton(t *testing.T) (*menu.Entry, *menu.Entry) {
	t.Helper()
	lang.SetLanguage("en")

	root, err := loader.Default()
	require.NoError(t, err)
	target := menu.NewNavigator().FindChildByPath(root, "main_menu/tools/scripting/user_scripts/scripts")
	require.NotNil(t, target)
	return root, target
}

func configuration(t *testing.T, metas ...*ScriptMetaData) *Configuration {
	t.Helper()
	conf := NewConfiguration()
	for _, meta := range metas {
		require.NoError(t, conf.Add("/scripts/"+meta.ScriptName+".groovy", meta))
	}
	return conf
}

func childNames(entry *menu.Entry) []string {
	var names []string
	for _, child := range entry.Children() {
		names = append(names, child.Name)
	}
	return names
}
