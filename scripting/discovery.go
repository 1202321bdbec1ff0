package scripting

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/share"
)

// DefaultExtensions 识别为脚本的文件扩展名
var DefaultExtensions = []string{".groovy", ".gvy", ".js", ".py", ".sh", ".lua"}

var (
	executionModesPattern = regexp.MustCompile(`@ExecutionModes\s*\(\s*\{([^}]*)\}\s*\)`)
	cacheContentPattern   = regexp.MustCompile(`@CacheScriptContent\s*\(\s*(true|false)\s*\)`)
	permissionsPattern    = regexp.MustCompile(`@ScriptPermissions\s*\(([^)]*)\)`)
	modeLocationPattern   = regexp.MustCompile(`^([A-Za-z_.]+)\s*(?:=\s*"([^"]*)")?$`)
	locationTitlePattern  = regexp.MustCompile(`^(.*?)\[(.*)\]$`)
)

// Discoverer 在脚本目录中查找脚本并解析其元数据
type Discoverer struct {
	Extensions []string
	Logger     *log.Logger
}

// NewDiscoverer 使用默认扩展名和共享日志创建 Discoverer
func NewDiscoverer() *Discoverer {
	return &Discoverer{
		Extensions: DefaultExtensions,
		Logger:     share.Logger(),
	}
}

// Discover 使用默认设置扫描目录
func Discover(dirs ...string) (*Configuration, error) {
	return NewDiscoverer().Discover(dirs...)
}

// Discover 依次扫描目录，同名脚本以先发现的为准
func (d *Discoverer) Discover(dirs ...string) (*Configuration, error) {
	conf := NewConfiguration()
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				d.logger().Warn("script directory does not exist", "dir", dir)
				continue
			}
			return nil, fmt.Errorf("读取脚本目录失败 %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}

		found, err := d.scanDir(dir)
		if err != nil {
			return nil, err
		}
		if err := d.applyManifest(dir, found); err != nil {
			return nil, err
		}
		for _, script := range found {
			if err := conf.Add(script.path, script.meta); err != nil {
				if errors.Is(err, ErrDuplicateScript) {
					d.logger().Warn("ignoring duplicate script", "name", script.meta.ScriptName, "path", script.path)
					continue
				}
				return nil, err
			}
		}
	}
	return conf, nil
}

type discovered struct {
	path string
	meta *ScriptMetaData
}

func (d *Discoverer) scanDir(dir string) ([]discovered, error) {
	var found []discovered
	seen := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.isScript(path) {
			return nil
		}

		name := ScriptName(path)
		if first, ok := seen[name]; ok {
			d.logger().Warn("ignoring duplicate script", "name", name, "path", path, "first", first)
			return nil
		}
		seen[name] = path

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("读取脚本失败 %s: %w", path, err)
		}
		meta, err := ParseMetaData(name, string(content))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		d.logger().Debug("discovered script", "name", name, "path", path, "modes", meta.ExecutionModes())
		found = append(found, discovered{path: path, meta: meta})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir 按字典序遍历，这里按脚本名排序保证顺序稳定
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].meta.ScriptName < found[j].meta.ScriptName
	})
	return found, nil
}

func (d *Discoverer) isScript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range d.Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

func (d *Discoverer) logger() *log.Logger {
	if d.Logger == nil {
		return share.Logger()
	}
	return d.Logger
}

// ScriptName 脚本名为去掉扩展名的文件名
func ScriptName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseMetaData 从脚本内容中解析注解
func ParseMetaData(scriptName, content string) (*ScriptMetaData, error) {
	meta := NewScriptMetaData(scriptName)

	if match := executionModesPattern.FindStringSubmatch(content); match != nil {
		if err := parseExecutionModes(meta, match[1]); err != nil {
			return nil, err
		}
	}

	if match := cacheContentPattern.FindStringSubmatch(content); match != nil {
		cache, _ := strconv.ParseBool(match[1])
		meta.CacheContent = cache
	}

	if match := permissionsPattern.FindStringSubmatch(content); match != nil {
		permissions, unknown := ParsePermissions(match[1])
		if len(unknown) > 0 {
			return nil, fmt.Errorf("unknown script permissions: %s", strings.Join(unknown, ", "))
		}
		meta.Permissions = permissions
	}
	return meta, nil
}

// splitDeclarations 按引号外的逗号切分模式声明
func splitDeclarations(body string) []string {
	var (
		items   []string
		start   int
		inQuote bool
	)
	for i, r := range body {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			items = append(items, body[start:i])
			start = i + 1
		}
	}
	return append(items, body[start:])
}

// parseExecutionModes 解析 {ON_SINGLE_NODE="loc[title]", ON_SELECTED_NODE}
func parseExecutionModes(meta *ScriptMetaData, body string) error {
	var modes []ExecutionMode
	locations := make(map[ExecutionMode]string)

	for _, item := range splitDeclarations(body) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		match := modeLocationPattern.FindStringSubmatch(item)
		if match == nil {
			return fmt.Errorf("invalid execution mode declaration: %q", item)
		}
		mode, err := ParseExecutionMode(match[1])
		if err != nil {
			return err
		}
		modes = append(modes, mode)

		location := match[2]
		if titled := locationTitlePattern.FindStringSubmatch(location); titled != nil {
			location = titled[1]
			if meta.Title == "" {
				// 标题可以是语言包中的键
				meta.Title = lang.T(strings.TrimSpace(titled[2]))
			}
		}
		if location != "" {
			locations[mode] = location
		}
	}
	if len(modes) == 0 {
		return fmt.Errorf("empty execution mode declaration")
	}

	meta.SetExecutionModes(modes...)
	for mode, location := range locations {
		meta.SetMenuLocation(mode, location)
	}
	return nil
}
