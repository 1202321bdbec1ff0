package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/scriptmenu/helper"
)

// JSONStore 管理特定目录下的JSON文件
type JSONStore struct {
	// 基础目录，默认为用户家目录下的 .scriptmenu
	BaseDir string
	// 子目录，用于区分不同类型的JSON文件
	SubDir string
	// 完整目录路径 (BaseDir + SubDir)
	Path string
}

// NewJSONStore 在默认基础目录下创建一个新的JSONStore
func NewJSONStore(subDir string) (*JSONStore, error) {
	return NewJSONStoreAt(helper.GetPath(""), subDir)
}

// NewJSONStoreAt 在指定基础目录下创建JSONStore
func NewJSONStoreAt(baseDir, subDir string) (*JSONStore, error) {
	path := baseDir
	if subDir != "" {
		path = filepath.Join(baseDir, subDir)
	}

	// 确保目录存在
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("创建目录失败 %s: %w", path, err)
	}

	return &JSONStore{
		BaseDir: baseDir,
		SubDir:  subDir,
		Path:    path,
	}, nil
}

// ensureJSONExtension 确保文件名有.json扩展名
func ensureJSONExtension(filename string) string {
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return filename + ".json"
	}
	return filename
}

func (s *JSONStore) filePath(name string) string {
	return filepath.Join(s.Path, ensureJSONExtension(name))
}

// Get 读取指定名称的JSON文件并解码到 decodeInto
func (s *JSONStore) Get(name string, decodeInto interface{}) error {
	filename := ensureJSONExtension(name)

	data, err := os.ReadFile(s.filePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("文件不存在: %s: %w", filename, os.ErrNotExist)
		}
		return fmt.Errorf("读取文件失败 %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, decodeInto); err != nil {
		return fmt.Errorf("解析JSON失败 %s: %w", filename, err)
	}
	return nil
}

// Set 将对象编码为JSON并写入指定名称的文件
func (s *JSONStore) Set(name string, data interface{}) error {
	filename := ensureJSONExtension(name)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("编码为JSON失败: %w", err)
	}

	if err := helper.WriteFile(s.filePath(name), jsonData); err != nil {
		return fmt.Errorf("写入文件失败 %s: %w", filename, err)
	}
	return nil
}

// Exists 检查指定名称的JSON文件是否存在
func (s *JSONStore) Exists(name string) bool {
	_, err := os.Stat(s.filePath(name))
	return err == nil
}

// Delete 删除指定名称的JSON文件
func (s *JSONStore) Delete(name string) error {
	filename := ensureJSONExtension(name)
	if err := os.Remove(s.filePath(name)); err != nil {
		return fmt.Errorf("删除文件失败 %s: %w", filename, err)
	}
	return nil
}
