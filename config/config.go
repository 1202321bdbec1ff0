package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sjzsdu/scriptmenu/helper"
	"github.com/sjzsdu/scriptmenu/share"
)

// 配置文件位于 ~/.scriptmenu/config，每行一个 SCRIPTMENU_KEY=value，# 开头的行是注释
const configFile = "config"

var (
	mu     sync.RWMutex
	stored = make(map[string]string)
)

func init() {
	// 配置文件损坏时只依赖环境变量
	_ = LoadConfig()
}

// GetEnvKey 把简短键转换为环境变量名，例如 mode -> SCRIPTMENU_MODE
func GetEnvKey(flagKey string) string {
	return share.PREFIX + strings.ToUpper(flagKey)
}

// envName 已带前缀的键原样返回
func envName(key string) string {
	if strings.HasPrefix(key, share.PREFIX) {
		return key
	}
	return GetEnvKey(key)
}

// GetConfig 读取配置，环境变量优先于配置文件
//
// key 可以是完整的环境变量名，也可以是简短键
func GetConfig(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if strings.HasPrefix(key, share.PREFIX) {
		return ""
	}
	return os.Getenv(GetEnvKey(key))
}

func GetConfigWithDefault(key string, defaultValue string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return defaultValue
}

// GetConfigList 读取以逗号分隔的配置项，空白项被忽略
func GetConfigList(key string) []string {
	var items []string
	for _, item := range strings.Split(GetConfig(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadConfig 重新读取配置文件，并把其中的值导出到环境变量
func LoadConfig() error {
	file, err := os.Open(helper.GetPath(configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	values, err := parseConfig(file)
	if err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	stored = values
	for key, value := range stored {
		os.Setenv(key, value)
	}
	return nil
}

// SaveConfig 把当前配置按键排序写回配置文件
func SaveConfig() error {
	mu.RLock()
	data := formatConfig(stored)
	mu.RUnlock()

	return helper.WriteFile(helper.GetPath(configFile), data)
}

// SetConfig 设置配置值并更新环境变量
func SetConfig(key, value string) {
	name := envName(key)

	mu.Lock()
	defer mu.Unlock()
	stored[name] = value
	os.Setenv(name, value)
}

// ClearConfig 清除指定配置
func ClearConfig(key string) {
	name := envName(key)

	mu.Lock()
	defer mu.Unlock()
	delete(stored, name)
	os.Unsetenv(name)
}

// ClearAllConfig 清除所有已保存的配置
func ClearAllConfig() {
	mu.Lock()
	defer mu.Unlock()
	for name := range stored {
		os.Unsetenv(name)
	}
	stored = make(map[string]string)
}

// StoredKeys 返回配置文件中保存的环境变量名，按字典序
func StoredKeys() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(stored))
	for key := range stored {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func parseConfig(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if key = strings.TrimSpace(key); key != "" {
			values[key] = strings.TrimSpace(value)
		}
	}
	return values, scanner.Err()
}

func formatConfig(values map[string]string) []byte {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&buf, "%s=%s\n", key, values[key])
	}
	return buf.Bytes()
}
