package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAction struct {
	enabled bool
}

func (a fakeAction) Key() string     { return "ExecuteScriptAction.hello.ON_SINGLE_NODE" }
func (a fakeAction) Enabled() bool   { return a.enabled }
func (a fakeAction) Tooltip() string { return "<html>hello</html>" }
func (a fakeAction) Icon() string    { return "" }

func sampleMenu(t *testing.T) *menu.Entry {
	t.Helper()
	root := menu.NewEntry("")
	scripts, err := menu.FindOrCreate(nil, root, "main_menu/scripts", capitalize)
	require.NoError(t, err)

	hello := menu.NewEntry("hello")
	hello.SetAttribute(menu.AttrText, "Hello_World")
	hello.SetAction(fakeAction{enabled: false})
	require.NoError(t, scripts.AddChild(hello))
	return root
}

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

func TestMarkdownExporter(t *testing.T) {
	out := NewMarkdownExporter().Render(sampleMenu(t))
	assert.Equal(t, "# Menu\n\n- **Main\\_menu**\n  - **Scripts**\n    - Hello\\_World _(disabled)_\n", out)
}

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter().Export(sampleMenu(t), &buf))

	var decoded JSONEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Children, 1)
	scripts := decoded.Children[0].Children[0]
	assert.Equal(t, "main_menu/scripts", scripts.Path)
	assert.True(t, scripts.Enabled)

	hello := scripts.Children[0]
	assert.Equal(t, "Hello_World", hello.Title)
	assert.False(t, hello.Enabled)
	assert.Equal(t, "ExecuteScriptAction.hello.ON_SINGLE_NODE", hello.Action)
	assert.Equal(t, "<html>hello</html>", hello.Tooltip)
	assert.Nil(t, ToJSONEntry(nil))
}

func TestPDFExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter().Export(sampleMenu(t), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestOutput(t *testing.T) {
	dir := t.TempDir()
	root := sampleMenu(t)

	for _, name := range []string{"menu.md", "menu.json", "menu.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Output(root, path), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	err := Output(root, filepath.Join(dir, "menu.xml"))
	assert.ErrorContains(t, err, "unsupported output format")
}
