package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseMetaData(t *testing.T) {
	content := `// @ExecutionModes({ON_SINGLE_NODE="main_menu_scripting/scripts/tools[Tool Box]", ON_SELECTED_NODE})
// @CacheScriptContent(true)
// @ScriptPermissions(read, network)
println "hi"
`
	meta, err := ParseMetaData("tool", content)
	require.NoError(t, err)

	assert.Equal(t, []ExecutionMode{OnSingleNode, OnSelectedNode}, meta.ExecutionModes())
	assert.Equal(t, "main_menu_scripting/scripts/tools", meta.MenuLocation(OnSingleNode))
	assert.Empty(t, meta.MenuLocation(OnSelectedNode))
	assert.Equal(t, "Tool Box", meta.Title)
	assert.True(t, meta.CacheContent)
	assert.Equal(t, Permissions{Read: true, Network: true}, meta.Permissions)
}

func TestParseMetaDataQuotedComma(t *testing.T) {
	meta, err := ParseMetaData("x", `@ExecutionModes({ON_SINGLE_NODE="main_menu/a, b[My, Title]", ON_SELECTED_NODE})`)
	require.NoError(t, err)

	assert.Equal(t, []ExecutionMode{OnSingleNode, OnSelectedNode}, meta.ExecutionModes())
	assert.Equal(t, "main_menu/a, b", meta.MenuLocation(OnSingleNode))
	assert.Empty(t, meta.MenuLocation(OnSelectedNode))
	assert.Equal(t, "My, Title", meta.Title)
}

func TestDiscoverQuotedComma(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "comma.groovy", `// @ExecutionModes({ON_SINGLE_NODE="main_menu/a, b[My, Title]", ON_SELECTED_NODE})`)
	writeScript(t, dir, "plain.sh", "echo")

	conf, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Len())
}

func TestParseMetaDataTranslatedTitle(t *testing.T) {
	lang.SetLanguage("zh")
	defer lang.SetLanguage("en")

	meta, err := ParseMetaData("tool", `@ExecutionModes({ON_SINGLE_NODE="main_menu/tools[Script Tools]"})`)
	require.NoError(t, err)
	assert.Equal(t, "脚本工具", meta.Title)
	assert.Equal(t, "main_menu/tools", meta.MenuLocation(OnSingleNode))

	// 语言包中没有的键保持原样
	meta, err = ParseMetaData("tool", `@ExecutionModes({ON_SINGLE_NODE="main_menu/tools[Tool Box]"})`)
	require.NoError(t, err)
	assert.Equal(t, "Tool Box", meta.Title)
}

func TestParseMetaDataErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "未知模式", content: `@ExecutionModes({ON_EVERY_NODE})`},
		{name: "空声明", content: `@ExecutionModes({ })`},
		{name: "格式错误", content: `@ExecutionModes({ON_SINGLE_NODE=main})`},
		{name: "引号未闭合", content: `@ExecutionModes({ON_SINGLE_NODE="main, ON_SELECTED_NODE})`},
		{name: "未知权限", content: `@ScriptPermissions(read, teleport)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetaData("bad", tt.content)
			assert.Error(t, err)
		})
	}
}

func TestDiscover(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeScript(t, first, "helloWorld.groovy", "println 'hello'")
	writeScript(t, first, "nested/export.py", `# @ExecutionModes({ON_SELECTED_NODE="main_menu/export"})`)
	writeScript(t, first, "README.md", "# not a script")
	writeScript(t, first, ".hidden/secret.sh", "echo secret")
	writeScript(t, second, "helloWorld.js", "console.log('duplicate')")
	writeScript(t, second, "zeta.lua", "print('z')")

	conf, err := Discover(first, filepath.Join(first, "missing"), second)
	require.NoError(t, err)

	assert.Equal(t, []ScriptRef{
		{Name: "export", Path: filepath.Join(first, "nested", "export.py")},
		{Name: "helloWorld", Path: filepath.Join(first, "helloWorld.groovy")},
		{Name: "zeta", Path: filepath.Join(second, "zeta.lua")},
	}, conf.Scripts())

	meta, ok := conf.MetaData("export")
	require.True(t, ok)
	assert.Equal(t, []ExecutionMode{OnSelectedNode}, meta.ExecutionModes())
	assert.Equal(t, "main_menu/export", meta.MenuLocation(OnSelectedNode))

	meta, ok = conf.MetaData("helloWorld")
	require.True(t, ok)
	assert.Equal(t, AllExecutionModes, meta.ExecutionModes())
}

func TestDiscoverDuplicateWithinDirectory(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a/job.sh", "echo a")
	writeScript(t, dir, "b/job.py", "print('b')")

	conf, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []ScriptRef{{Name: "job", Path: filepath.Join(dir, "a", "job.sh")}}, conf.Scripts())
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()
	file := writeScript(t, dir, "plain.sh", "echo")

	_, err := Discover(file)
	assert.Error(t, err, "不是目录")

	writeScript(t, dir, "broken.groovy", "@ExecutionModes({NOPE})")
	_, err = Discover(dir)
	assert.Error(t, err)
}

func TestDiscoverWithCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.rb", "puts 1")
	writeScript(t, dir, "b.sh", "echo 1")

	d := NewDiscoverer()
	d.Extensions = []string{".rb"}
	conf, err := d.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []ScriptRef{{Name: "a", Path: filepath.Join(dir, "a.rb")}}, conf.Scripts())
}
