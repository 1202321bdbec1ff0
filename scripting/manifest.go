package scripting

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sjzsdu/scriptmenu/share"
	"gopkg.in/yaml.v3"
)

// Manifest 脚本目录下 scriptmenu.yaml 的内容，覆盖脚本注解
type Manifest struct {
	Scripts map[string]ManifestScript `yaml:"scripts"`
}

// ManifestScript 单个脚本的覆盖项，未填写的字段保持注解中的值
type ManifestScript struct {
	Title       string                   `yaml:"title,omitempty"`
	Modes       []ExecutionMode          `yaml:"modes,omitempty"`
	Locations   map[ExecutionMode]string `yaml:"locations,omitempty"`
	Cache       *bool                    `yaml:"cache,omitempty"`
	Permissions []string                 `yaml:"permissions,omitempty"`
	Icon        string                   `yaml:"icon,omitempty"`
}

// LoadManifest 从 YAML 读取清单
func LoadManifest(r io.Reader) (*Manifest, error) {
	var manifest Manifest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("解析清单失败: %w", err)
	}
	return &manifest, nil
}

// Apply 把覆盖项写入元数据
func (s ManifestScript) Apply(meta *ScriptMetaData) error {
	if s.Title != "" {
		meta.Title = s.Title
	}
	if len(s.Modes) > 0 {
		meta.SetExecutionModes(s.Modes...)
		// 只保留仍受支持的模式的位置
		for _, mode := range AllExecutionModes {
			if !meta.SupportsMode(mode) {
				delete(meta.menuLocations, mode)
			}
		}
	}
	for _, mode := range AllExecutionModes {
		if location, ok := s.Locations[mode]; ok {
			meta.SetMenuLocation(mode, location)
		}
	}
	if s.Cache != nil {
		meta.CacheContent = *s.Cache
	}
	if len(s.Permissions) > 0 {
		permissions, unknown := ParsePermissions(s.Permissions...)
		if len(unknown) > 0 {
			return fmt.Errorf("unknown script permissions for %s: %v", meta.ScriptName, unknown)
		}
		meta.Permissions = permissions
	}
	if s.Icon != "" {
		meta.Icon = s.Icon
	}
	return nil
}

func (d *Discoverer) applyManifest(dir string, found []discovered) error {
	path := filepath.Join(dir, share.MANIFEST_FILE)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("读取清单失败 %s: %w", path, err)
	}
	defer file.Close()

	manifest, err := LoadManifest(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	byName := make(map[string]*ScriptMetaData, len(found))
	for _, script := range found {
		byName[script.meta.ScriptName] = script.meta
	}
	for name, override := range manifest.Scripts {
		meta, ok := byName[name]
		if !ok {
			d.logger().Warn("manifest entry for unknown script", "name", name, "manifest", path)
			continue
		}
		if err := override.Apply(meta); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
