package scripting

import (
	"fmt"

	"github.com/sjzsdu/scriptmenu/helper"
	"github.com/sjzsdu/scriptmenu/helper/json"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/sjzsdu/scriptmenu/share"
)

// 脚本菜单位置使用的逻辑前缀
const (
	ScriptingPrefix = "main_menu_scripting"
	ScriptsPrefix   = "main_menu_scripting/scripts"
)

// DefaultAliases 与访问目标无关的固定别名
func DefaultAliases() []menu.Alias {
	return []menu.Alias{
		{Logical: "/menu_bar/help", Canonical: "main_menu/help/help_misc"},
		{Logical: "/menu_bar", Canonical: "main_menu"},
	}
}

// AliasStore 把用户定义的别名持久化为 JSON
type AliasStore struct {
	store *json.JSONStore
}

// NewAliasStore 使用 ~/.scriptmenu 下的默认存储
func NewAliasStore() (*AliasStore, error) {
	store, err := json.NewJSONStore("")
	if err != nil {
		return nil, err
	}
	return &AliasStore{store: store}, nil
}

// NewAliasStoreWith 使用指定的 JSONStore
func NewAliasStoreWith(store *json.JSONStore) *AliasStore {
	return &AliasStore{store: store}
}

// Load 读取所有别名，文件不存在时返回空列表
func (s *AliasStore) Load() ([]menu.Alias, error) {
	if !s.store.Exists(share.ALIAS_STORE) {
		return nil, nil
	}
	var aliases []menu.Alias
	if err := s.store.Get(share.ALIAS_STORE, &aliases); err != nil {
		return nil, err
	}
	return aliases, nil
}

// Save 覆盖保存别名列表，列表为空时删除存储文件
func (s *AliasStore) Save(aliases []menu.Alias) error {
	if len(aliases) == 0 {
		if !s.store.Exists(share.ALIAS_STORE) {
			return nil
		}
		return s.store.Delete(share.ALIAS_STORE)
	}
	return s.store.Set(share.ALIAS_STORE, aliases)
}

// Add 添加或覆盖一条别名
func (s *AliasStore) Add(logical, canonical string) error {
	logical = helper.JoinMenuPath(logical)
	if logical == "" {
		return menu.ErrEmptyAlias
	}
	canonical = helper.JoinMenuPath(canonical)

	aliases, err := s.Load()
	if err != nil {
		return err
	}
	for i := range aliases {
		if helper.JoinMenuPath(aliases[i].Logical) == logical {
			aliases[i].Canonical = canonical
			return s.Save(aliases)
		}
	}
	return s.Save(append(aliases, menu.Alias{Logical: logical, Canonical: canonical}))
}

// Remove 删除一条别名，返回是否存在
func (s *AliasStore) Remove(logical string) (bool, error) {
	logical = helper.JoinMenuPath(logical)
	aliases, err := s.Load()
	if err != nil {
		return false, err
	}
	for i := range aliases {
		if helper.JoinMenuPath(aliases[i].Logical) == logical {
			aliases = append(aliases[:i], aliases[i+1:]...)
			if err := s.Save(aliases); err != nil {
				return false, fmt.Errorf("保存别名失败: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}
