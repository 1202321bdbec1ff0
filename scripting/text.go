package scripting

import (
	"regexp"
	"strings"

	"github.com/sjzsdu/scriptmenu/lang"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// ScriptNameToMenuItemTitle 把脚本名或路径段转换成菜单标题，如 helloWorld -> Hello World
func ScriptNameToMenuItemTitle(scriptName string) string {
	spaced := camelBoundary.ReplaceAllString(scriptName, "$1 $2")
	words := strings.FieldsFunc(spaced, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return scriptName
	}
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(words, " "))
}

// ModeTitle 执行模式的本地化标题
func ModeTitle(mode ExecutionMode) string {
	return lang.Tf(mode.Key(), map[string]any{"Script": lang.T("script")})
}

// MenuItemTitle 脚本在某执行模式下的菜单标题
func MenuItemTitle(meta *ScriptMetaData) string {
	if meta.Title != "" {
		return meta.Title
	}
	return ScriptNameToMenuItemTitle(meta.ScriptName)
}

// CreateTooltip 列出脚本支持的所有执行模式
func CreateTooltip(title string, modes []ExecutionMode) string {
	var b strings.Builder
	b.WriteString("<html>")
	b.WriteString(lang.Tf("Available modes for {{.Title}}:", map[string]any{"Title": title}))
	b.WriteString("<ul>")
	for _, mode := range modes {
		b.WriteString("<li>")
		b.WriteString(ModeTitle(mode))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
