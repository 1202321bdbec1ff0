package scripting

import (
	"strings"
)

// Permissions 脚本请求的权限
type Permissions struct {
	Read    bool `yaml:"read" json:"read"`
	Write   bool `yaml:"write" json:"write"`
	Network bool `yaml:"network" json:"network"`
	Exec    bool `yaml:"exec" json:"exec"`
}

// ParsePermissions 解析逗号或空白分隔的权限列表，未知项原样返回
func ParsePermissions(items ...string) (Permissions, []string) {
	var p Permissions
	var unknown []string
	for _, item := range items {
		for _, token := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '"'
		}) {
			switch strings.ToLower(token) {
			case "read", "readaccess":
				p.Read = true
			case "write", "writeaccess":
				p.Write = true
			case "network", "networkaccess":
				p.Network = true
			case "exec", "execaccess":
				p.Exec = true
			default:
				unknown = append(unknown, token)
			}
		}
	}
	return p, unknown
}

func (p Permissions) String() string {
	var names []string
	if p.Read {
		names = append(names, "read")
	}
	if p.Write {
		names = append(names, "write")
	}
	if p.Network {
		names = append(names, "network")
	}
	if p.Exec {
		names = append(names, "exec")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ScriptMetaData 一个脚本的菜单元数据
type ScriptMetaData struct {
	ScriptName   string
	Title        string // 为空时由脚本名推导
	CacheContent bool
	Permissions  Permissions
	Icon         string

	executionModes []ExecutionMode
	menuLocations  map[ExecutionMode]string
}

// NewScriptMetaData 创建元数据，未指定执行模式时支持全部模式
func NewScriptMetaData(scriptName string, modes ...ExecutionMode) *ScriptMetaData {
	meta := &ScriptMetaData{
		ScriptName:    scriptName,
		menuLocations: make(map[ExecutionMode]string),
	}
	if len(modes) == 0 {
		modes = AllExecutionModes
	}
	meta.SetExecutionModes(modes...)
	return meta
}

// SetExecutionModes 替换支持的执行模式，去重并保持顺序
func (m *ScriptMetaData) SetExecutionModes(modes ...ExecutionMode) {
	m.executionModes = nil
	for _, mode := range modes {
		m.AddExecutionMode(mode)
	}
}

// AddExecutionMode 添加一个执行模式
func (m *ScriptMetaData) AddExecutionMode(mode ExecutionMode) {
	if !m.SupportsMode(mode) {
		m.executionModes = append(m.executionModes, mode)
	}
}

// ExecutionModes 返回支持的执行模式副本
func (m *ScriptMetaData) ExecutionModes() []ExecutionMode {
	modes := make([]ExecutionMode, len(m.executionModes))
	copy(modes, m.executionModes)
	return modes
}

// SupportsMode 是否支持某个执行模式
func (m *ScriptMetaData) SupportsMode(mode ExecutionMode) bool {
	for _, supported := range m.executionModes {
		if supported == mode {
			return true
		}
	}
	return false
}

// SetMenuLocation 设置某个执行模式的菜单位置，同时把该模式加入支持列表
func (m *ScriptMetaData) SetMenuLocation(mode ExecutionMode, location string) {
	if m.menuLocations == nil {
		m.menuLocations = make(map[ExecutionMode]string)
	}
	location = strings.TrimSpace(location)
	if location == "" {
		delete(m.menuLocations, mode)
	} else {
		m.menuLocations[mode] = location
	}
	m.AddExecutionMode(mode)
}

// MenuLocation 返回某个执行模式的菜单位置，未声明时为空串
func (m *ScriptMetaData) MenuLocation(mode ExecutionMode) string {
	return m.menuLocations[mode]
}

// HasMenuLocation 是否至少有一个执行模式声明了菜单位置
func (m *ScriptMetaData) HasMenuLocation() bool {
	return len(m.menuLocations) > 0
}
