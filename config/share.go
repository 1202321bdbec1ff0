package config

import (
	"fmt"
	"strings"
)

// ConfigKeyInfo 存储配置键的相关信息
type ConfigKeyInfo struct {
	Description string   // 配置项描述
	Options     []string // 可选值，如果为空则表示没有限制
	Type        string   // 配置项类型，"string" 或 "list"
}

// 配置键常量定义
const (
	KeyLang       = "lang"
	KeyMode       = "mode"
	KeyScriptDirs = "script_dirs"
	KeyRenderer   = "renderer"
)

// ConfigKeys 存储所有配置键及其信息
var ConfigKeys = map[string]ConfigKeyInfo{
	KeyLang: {
		Description: "Set language",
		Options:     []string{"en", "zh"},
		Type:        "string",
	},
	KeyMode: {
		Description: "Set default execution mode",
		Options:     []string{"ON_SINGLE_NODE", "ON_SELECTED_NODE", "ON_SELECTED_NODE_RECURSIVELY"},
		Type:        "string",
	},
	KeyScriptDirs: {
		Description: "Set script directories",
		Type:        "list",
	},
	KeyRenderer: {
		Description: "Set menu render type",
		Options:     []string{"text", "markdown"},
		Type:        "string",
	},
}

// ValidateValue 检查配置值是否在允许范围内
func ValidateValue(key, value string) error {
	info, ok := ConfigKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if len(info.Options) == 0 {
		return nil
	}
	for _, option := range info.Options {
		if strings.EqualFold(option, value) {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s, expected one of: %s", value, key, strings.Join(info.Options, ", "))
}
