package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sjzsdu/scriptmenu/helper"
)

// maxAliasDepth 别名连续替换的上限，超过即视为循环
const maxAliasDepth = 16

var ErrEmptyAlias = errors.New("alias prefix must not be empty")

type alias struct {
	logical   string
	canonical string
	segments  int
	order     int
}

// Alias 别名表中的一条规则
type Alias struct {
	Logical   string `json:"logical"`
	Canonical string `json:"canonical"`
}

// Navigator 把别名前缀改写为实际路径，并按路径在菜单树中查找节点
type Navigator struct {
	aliases []alias
	added   int
}

// NewNavigator 创建一个空别名表的导航器
func NewNavigator() *Navigator {
	return &Navigator{}
}

// AddAlias 注册一条改写规则，同一逻辑前缀重复注册时覆盖旧值
func (n *Navigator) AddAlias(logicalPrefix, canonicalPrefix string) error {
	logical := helper.JoinMenuPath(logicalPrefix)
	if logical == "" {
		return ErrEmptyAlias
	}
	canonical := helper.JoinMenuPath(canonicalPrefix)

	for i := range n.aliases {
		if n.aliases[i].logical == logical {
			n.aliases[i].canonical = canonical
			return nil
		}
	}

	n.added++
	n.aliases = append(n.aliases, alias{
		logical:   logical,
		canonical: canonical,
		segments:  strings.Count(logical, "/") + 1,
		order:     n.added,
	})
	// 更具体（段数更多）的前缀优先，段数相同保持注册顺序
	sort.SliceStable(n.aliases, func(i, j int) bool {
		if n.aliases[i].segments != n.aliases[j].segments {
			return n.aliases[i].segments > n.aliases[j].segments
		}
		return n.aliases[i].order < n.aliases[j].order
	})
	return nil
}

// Aliases 按匹配优先级返回所有别名
func (n *Navigator) Aliases() []Alias {
	result := make([]Alias, 0, len(n.aliases))
	for _, a := range n.aliases {
		result = append(result, Alias{Logical: a.logical, Canonical: a.canonical})
	}
	return result
}

// match 返回第一条按段匹配 path 的别名
func (n *Navigator) match(path string) (alias, bool) {
	for _, a := range n.aliases {
		if path == a.logical || strings.HasPrefix(path, a.logical+"/") {
			return a, true
		}
	}
	return alias{}, false
}

// Resolve 反复应用别名直到没有规则匹配，返回实际路径
func (n *Navigator) Resolve(path string) (string, error) {
	current := helper.JoinMenuPath(path)
	for depth := 0; ; depth++ {
		a, ok := n.match(current)
		if !ok {
			return current, nil
		}
		next := helper.JoinMenuPath(a.canonical, strings.TrimPrefix(current, a.logical))
		if next == current {
			return current, nil
		}
		if depth >= maxAliasDepth {
			return "", fmt.Errorf("%w: %s", ErrAliasCycle, path)
		}
		current = next
	}
}

// FindChildByPath 改写别名后从 root 逐段查找，不存在时返回 nil
func (n *Navigator) FindChildByPath(root *Entry, path string) *Entry {
	if root == nil {
		return nil
	}
	resolved, err := n.Resolve(path)
	if err != nil {
		return nil
	}
	return findByCanonicalPath(root, resolved)
}

// findByCanonicalPath 在不做别名改写的情况下逐段查找
func findByCanonicalPath(root *Entry, path string) *Entry {
	current := root
	for _, segment := range helper.SplitMenuPath(path) {
		current = current.Child(segment)
		if current == nil {
			return nil
		}
	}
	return current
}
