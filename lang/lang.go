package lang

import (
	"embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/share"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	mu        sync.RWMutex
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err == nil {
		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				continue
			}
			// 语言包损坏时退回到消息 ID
			_, _ = bundle.ParseMessageFileBytes(data, entry.Name())
		}
	}

	SetLanguage(config.GetConfigWithDefault("lang", share.DEFAULT_LANG))
}

// SetLanguage 切换当前语言，例如 "en"、"zh"
func SetLanguage(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = share.DEFAULT_LANG
	}

	mu.Lock()
	defer mu.Unlock()
	current = tag
	localizer = i18n.NewLocalizer(bundle, tag, share.DEFAULT_LANG)
}

// Language 返回当前语言
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T 翻译消息，消息 ID 即英文原文
func T(id string) string {
	return Tf(id, nil)
}

// Tf 翻译带模板参数的消息
func Tf(id string, data map[string]any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: id},
		TemplateData:   data,
	})
	if err != nil {
		return id
	}
	return msg
}
