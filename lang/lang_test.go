package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	defer SetLanguage("en")

	tests := []struct {
		name     string
		lang     string
		id       string
		data     map[string]any
		expected string
	}{
		{
			name:     "英文原文",
			lang:     "en",
			id:       "No scripts available",
			expected: "No scripts available",
		},
		{
			name:     "中文翻译",
			lang:     "zh",
			id:       "No scripts available",
			expected: "没有可用的脚本",
		},
		{
			name:     "模板参数",
			lang:     "en",
			id:       "Available modes for {{.Title}}:",
			data:     map[string]any{"Title": "Foo"},
			expected: "Available modes for Foo:",
		},
		{
			name:     "未知消息退回到 ID",
			lang:     "zh",
			id:       "does not exist anywhere",
			expected: "does not exist anywhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLanguage(tt.lang)
			assert.Equal(t, tt.lang, Language())
			assert.Equal(t, tt.expected, Tf(tt.id, tt.data))
		})
	}
}
