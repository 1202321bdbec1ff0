// Package loader 从 YAML 文档读取菜单骨架
package loader

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/sjzsdu/scriptmenu/menu"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSkeleton []byte

// Node 菜单骨架中的一个节点
type Node struct {
	Name       string            `yaml:"name"`
	Text       string            `yaml:"text,omitempty"`
	Builder    string            `yaml:"builder,omitempty"`
	Icon       string            `yaml:"icon,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Children   []Node            `yaml:"children,omitempty"`
}

// Load 从 r 读取 YAML 骨架并构建菜单树
func Load(r io.Reader) (*menu.Entry, error) {
	var node Node
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&node); err != nil {
		return nil, fmt.Errorf("解析菜单骨架失败: %w", err)
	}
	return Build(node)
}

// LoadFile 从文件读取菜单骨架
func LoadFile(path string) (*menu.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// Default 返回内置的菜单骨架
func Default() (*menu.Entry, error) {
	return Load(bytes.NewReader(defaultSkeleton))
}

// Build 把骨架节点转换为菜单树
func Build(node Node) (*menu.Entry, error) {
	entry := menu.NewEntry(node.Name)
	for key, value := range node.Attributes {
		entry.SetAttribute(key, value)
	}
	if node.Text != "" {
		entry.SetAttribute(menu.AttrText, node.Text)
	}
	if node.Builder != "" {
		entry.SetAttribute(menu.AttrBuilder, node.Builder)
	}
	entry.SetIcon(node.Icon)

	seen := make(map[string]bool, len(node.Children))
	for _, childNode := range node.Children {
		if childNode.Name == "" {
			return nil, fmt.Errorf("菜单 '%s' 下存在未命名的子节点", node.Name)
		}
		if seen[childNode.Name] {
			return nil, fmt.Errorf("菜单 '%s' 下子节点重名: %s", node.Name, childNode.Name)
		}
		seen[childNode.Name] = true

		child, err := Build(childNode)
		if err != nil {
			return nil, err
		}
		if err := entry.AddChild(child); err != nil {
			return nil, err
		}
	}
	return entry, nil
}
