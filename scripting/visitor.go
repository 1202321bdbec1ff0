package scripting

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/sjzsdu/scriptmenu/share"
)

// BuilderName 菜单骨架中触发脚本菜单构建的 builder 名称
const BuilderName = "scripts"

var ErrBuildFinished = errors.New("script menu build already finished")

// BuildState 脚本菜单构建的进度
type BuildState int

const (
	StateNotStarted BuildState = iota
	StateVisiting
	StateActionsPhase
	StateDone
)

func (s BuildState) String() string {
	switch s {
	case StateNotStarted:
		return "NOT_STARTED"
	case StateVisiting:
		return "VISITING"
	case StateActionsPhase:
		return "ACTIONS_PHASE"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("BuildState(%d)", int(s))
	}
}

// Option 配置 MenuEntryVisitor
type Option func(*MenuEntryVisitor)

// WithAliases 追加用户别名，在内置别名之后注册，逻辑前缀相同时覆盖内置别名
func WithAliases(aliases ...menu.Alias) Option {
	return func(v *MenuEntryVisitor) {
		v.aliases = append(v.aliases, aliases...)
	}
}

// WithTitleFunc 设置新建路径段的标题函数
func WithTitleFunc(fn menu.TitleFunc) Option {
	return func(v *MenuEntryVisitor) {
		v.titleFn = fn
	}
}

// WithActionFactory 设置脚本动作的构造函数
func WithActionFactory(factory ActionFactory) Option {
	return func(v *MenuEntryVisitor) {
		v.factory = factory
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *log.Logger) Option {
	return func(v *MenuEntryVisitor) {
		v.logger = logger
	}
}

// MenuEntryVisitor 把脚本配置变成菜单项
//
// 访问阶段把没有声明菜单位置的脚本挂到被访问节点下；ACTIONS 阶段结束后，
// 再把声明了位置的脚本按执行模式挂到对应位置，同一位置同一脚本只出现一次。
// 一个实例只服务一次构建。
type MenuEntryVisitor struct {
	provider Provider
	selector ModeSelector
	aliases  []menu.Alias
	titleFn  menu.TitleFunc
	factory  ActionFactory
	logger   *log.Logger

	state      BuildState
	navigator  *menu.Navigator
	target     *menu.Entry
	registered map[string]struct{}
	visited    int
}

// NewMenuEntryVisitor 创建脚本菜单访问器
func NewMenuEntryVisitor(provider Provider, selector ModeSelector, opts ...Option) *MenuEntryVisitor {
	v := &MenuEntryVisitor{
		provider:   provider,
		selector:   selector,
		titleFn:    ScriptNameToMenuItemTitle,
		factory:    NewScriptAction,
		registered: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.selector == nil {
		v.selector = StaticModeSelector(OnSingleNode)
	}
	if v.logger == nil {
		v.logger = share.Logger()
	}
	return v
}

// Visit 实现 menu.EntryVisitor
func (v *MenuEntryVisitor) Visit(target *menu.Entry) error {
	if target == nil {
		return menu.ErrNilEntry
	}
	if v.state == StateDone {
		return ErrBuildFinished
	}
	v.state = StateVisiting

	if v.navigator == nil {
		if err := v.initNavigator(target); err != nil {
			return err
		}
	}

	scripts := v.scripts()
	if len(scripts) == 0 {
		return v.addNoScriptsEntry(target)
	}

	mode := v.selector.ExecutionMode()
	for _, ref := range scripts {
		meta, err := v.metaData(ref)
		if err != nil {
			return err
		}
		if meta.HasMenuLocation() {
			continue
		}
		if err := target.AddChild(v.createEntry(ref, meta, mode)); err != nil {
			return fmt.Errorf("%w: cannot add %s to %s: %v", menu.ErrInternal, ref.Name, target.Path(), err)
		}
	}
	return nil
}

// ShouldSkipChildren 脚本菜单项由本访问器生成，不再向下遍历
func (v *MenuEntryVisitor) ShouldSkipChildren(*menu.Entry) bool {
	return true
}

// BuildPhaseFinished 实现 menu.BuildPhaseListener
func (v *MenuEntryVisitor) BuildPhaseFinished(phase menu.Phase, target *menu.Entry) error {
	if phase != menu.PhaseActions {
		return nil
	}
	if target == nil {
		return menu.ErrNilEntry
	}
	v.logger.Debug("build phase finished", "phase", phase, "path", target.Path())
	if !target.IsRoot() || v.state == StateDone {
		return nil
	}

	v.state = StateActionsPhase
	if v.navigator == nil {
		// 没有节点声明 scripts 构建器，只能使用固定别名
		if err := v.initNavigator(nil); err != nil {
			return err
		}
	}

	for _, ref := range v.scripts() {
		meta, err := v.metaData(ref)
		if err != nil {
			return err
		}
		if !meta.HasMenuLocation() {
			continue
		}
		if err := v.addEntryForGivenLocation(target, ref, meta); err != nil {
			return err
		}
	}
	v.state = StateDone
	return nil
}

// Navigator 返回本次构建使用的导航器，首次访问前为 nil
func (v *MenuEntryVisitor) Navigator() *menu.Navigator {
	return v.navigator
}

// State 当前构建状态
func (v *MenuEntryVisitor) State() BuildState {
	return v.state
}

// EntriesVisited 最近一次 BuildMenu 遍历过的菜单项数量
func (v *MenuEntryVisitor) EntriesVisited() int {
	return v.visited
}

// RegisteredLocations 已登记的 位置/脚本 组合，按字典序
func (v *MenuEntryVisitor) RegisteredLocations() []string {
	keys := make([]string, 0, len(v.registered))
	for key := range v.registered {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (v *MenuEntryVisitor) initNavigator(target *menu.Entry) error {
	nav := menu.NewNavigator()
	if target != nil {
		if scripts := target.Parent(); scripts != nil {
			if err := nav.AddAlias(ScriptsPrefix, scripts.Path()); err != nil {
				return err
			}
			if scripting := scripts.Parent(); scripting != nil {
				if err := nav.AddAlias(ScriptingPrefix, scripting.Path()); err != nil {
					return err
				}
			}
		}
	}
	for _, alias := range append(DefaultAliases(), v.aliases...) {
		if err := nav.AddAlias(alias.Logical, alias.Canonical); err != nil {
			return fmt.Errorf("invalid alias %s=%s: %w", alias.Logical, alias.Canonical, err)
		}
	}
	v.navigator = nav
	v.target = target
	return nil
}

func (v *MenuEntryVisitor) addEntryForGivenLocation(root *menu.Entry, ref ScriptRef, meta *ScriptMetaData) error {
	for _, mode := range meta.ExecutionModes() {
		location := meta.MenuLocation(mode)
		if location == "" {
			location = v.defaultLocation()
		}
		resolved, err := v.navigator.Resolve(location)
		if err != nil {
			return fmt.Errorf("cannot add entry for %s: %w", location, err)
		}

		key := resolved + "/" + ref.Name
		if _, ok := v.registered[key]; ok {
			continue
		}
		v.registered[key] = struct{}{}

		parent, err := menu.FindOrCreate(v.navigator, root, resolved, v.titleFn)
		if err != nil {
			return fmt.Errorf("cannot add entry for %s: %w", location, err)
		}
		if err := parent.AddChild(v.createEntry(ref, meta, mode)); err != nil {
			return fmt.Errorf("%w: cannot add entry for %s: %v", menu.ErrInternal, location, err)
		}
	}
	return nil
}

// defaultLocation 未声明位置的执行模式挂在被访问节点下
func (v *MenuEntryVisitor) defaultLocation() string {
	if v.target != nil {
		return v.target.Path()
	}
	return ScriptsPrefix
}

func (v *MenuEntryVisitor) createEntry(ref ScriptRef, meta *ScriptMetaData, mode ExecutionMode) *menu.Entry {
	title := MenuItemTitle(meta)
	action := v.factory(ActionRequest{
		ScriptName:   ref.Name,
		ScriptPath:   ref.Path,
		Title:        title,
		Tooltip:      CreateTooltip(title, meta.ExecutionModes()),
		Icon:         meta.Icon,
		Mode:         mode,
		CacheContent: meta.CacheContent,
		Permissions:  meta.Permissions,
		Enabled:      meta.SupportsMode(mode),
	})

	entry := menu.NewEntry(action.Key())
	entry.SetAttribute(menu.AttrText, title)
	entry.SetAction(action)
	entry.SetIcon(action.Icon())
	return entry
}

func (v *MenuEntryVisitor) addNoScriptsEntry(target *menu.Entry) error {
	action := noScriptsAction{}
	entry := menu.NewEntry(action.Key())
	entry.SetAttribute(menu.AttrText, action.Title())
	entry.SetAction(action)
	if err := target.AddChild(entry); err != nil {
		return fmt.Errorf("%w: %v", menu.ErrInternal, err)
	}
	return nil
}

func (v *MenuEntryVisitor) scripts() []ScriptRef {
	if v.provider == nil {
		return nil
	}
	return v.provider.Scripts()
}

func (v *MenuEntryVisitor) metaData(ref ScriptRef) (*ScriptMetaData, error) {
	meta, ok := v.provider.MetaData(ref.Name)
	if !ok || meta == nil {
		return nil, fmt.Errorf("%w: no metadata for script %s", menu.ErrInternal, ref.Name)
	}
	return meta, nil
}
