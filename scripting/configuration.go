package scripting

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDuplicateScript = errors.New("duplicate script name")

// ScriptRef 脚本名称与脚本路径
type ScriptRef struct {
	Name string
	Path string
}

// Provider 提供构建菜单所需的脚本配置快照
type Provider interface {
	// Scripts 按显示顺序返回所有脚本
	Scripts() []ScriptRef
	// MetaData 返回脚本的元数据
	MetaData(scriptName string) (*ScriptMetaData, bool)
}

// Configuration 内存中的脚本配置，按脚本名排序
type Configuration struct {
	refs  []ScriptRef
	metas map[string]*ScriptMetaData
}

// NewConfiguration 创建空配置
func NewConfiguration() *Configuration {
	return &Configuration{metas: make(map[string]*ScriptMetaData)}
}

// Add 登记一个脚本，元数据为 nil 时使用默认值
func (c *Configuration) Add(path string, meta *ScriptMetaData) error {
	if meta == nil || meta.ScriptName == "" {
		return fmt.Errorf("script %s has no name", path)
	}
	if _, exists := c.metas[meta.ScriptName]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScript, meta.ScriptName)
	}

	c.metas[meta.ScriptName] = meta
	c.refs = append(c.refs, ScriptRef{Name: meta.ScriptName, Path: path})
	sort.SliceStable(c.refs, func(i, j int) bool {
		return c.refs[i].Name < c.refs[j].Name
	})
	return nil
}

// Scripts 实现 Provider 接口
func (c *Configuration) Scripts() []ScriptRef {
	refs := make([]ScriptRef, len(c.refs))
	copy(refs, c.refs)
	return refs
}

// MetaData 实现 Provider 接口
func (c *Configuration) MetaData(scriptName string) (*ScriptMetaData, bool) {
	meta, ok := c.metas[scriptName]
	return meta, ok
}

// IsEmpty 是否没有任何脚本
func (c *Configuration) IsEmpty() bool {
	return len(c.refs) == 0
}

// Len 脚本数量
func (c *Configuration) Len() int {
	return len(c.refs)
}
