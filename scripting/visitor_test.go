package scripting

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorPlaceholderWhenNoScripts(t *testing.T) {
	root, target := skeleton(t)

	visitor, err := BuildMenu(root, NewConfiguration(), StaticModeSelector(OnSingleNode))
	require.NoError(t, err)

	require.Equal(t, 1, target.ChildCount())
	placeholder := target.Children()[0]
	assert.Equal(t, NoScriptsAvailableKey, placeholder.Name)
	assert.False(t, placeholder.Enabled())
	assert.Equal(t, "No scripts available", placeholder.Title())
	assert.Equal(t, StateDone, visitor.State())
	assert.Empty(t, visitor.RegisteredLocations())
}

func TestBuildMenuReportsProgress(t *testing.T) {
	root, _ := skeleton(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	visitor, err := BuildMenu(root, configuration(t, NewScriptMetaData("helloWorld")),
		StaticModeSelector(OnSingleNode), WithLogger(logger))
	require.NoError(t, err)

	assert.Positive(t, visitor.EntriesVisited())
	assert.Contains(t, buf.String(), "访问菜单项")
	assert.Contains(t, buf.String(), "path=")
}

func TestVisitorNilProviderActsAsEmpty(t *testing.T) {
	root, target := skeleton(t)

	_, err := BuildMenu(root, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{NoScriptsAvailableKey}, childNames(target))
}

func TestVisitorScriptsWithoutLocation(t *testing.T) {
	root, target := skeleton(t)
	conf := configuration(t,
		NewScriptMetaData("helloWorld"),
		NewScriptMetaData("recurse", OnSelectedNodeRecursively),
	)

	_, err := BuildMenu(root, conf, StaticModeSelector(OnSingleNode))
	require.NoError(t, err)

	children := target.Children()
	require.Len(t, children, 2)

	hello := children[0]
	assert.Equal(t, ActionKey("helloWorld", OnSingleNode), hello.Name)
	assert.Equal(t, "Hello World", hello.Title())
	assert.True(t, hello.Enabled())
	assert.Contains(t, hello.Tooltip(), "<html>Available modes for Hello World:<ul>")
	assert.Contains(t, hello.Tooltip(), "<li>Execute script on all selected nodes, recursively</li>")

	recurse := children[1]
	assert.Equal(t, ActionKey("recurse", OnSingleNode), recurse.Name)
	assert.False(t, recurse.Enabled(), "模式不受支持时禁用")
}

func TestVisitorSelectedModeDecidesEnabledState(t *testing.T) {
	root, target := skeleton(t)
	conf := configuration(t, NewScriptMetaData("recurse", OnSelectedNodeRecursively))

	_, err := BuildMenu(root, conf, ModeSelectorFunc(func() ExecutionMode {
		return OnSelectedNodeRecursively
	}))
	require.NoError(t, err)

	require.Equal(t, 1, target.ChildCount())
	entry := target.Children()[0]
	assert.Equal(t, ActionKey("recurse", OnSelectedNodeRecursively), entry.Name)
	assert.True(t, entry.Enabled())
}

func TestVisitorLocationDedupAcrossModes(t *testing.T) {
	root, _ := skeleton(t)
	meta := NewScriptMetaData("export", OnSingleNode, OnSelectedNode, OnSelectedNodeRecursively)
	meta.SetMenuLocation(OnSingleNode, "main_menu_scripting/scripts/custom")
	meta.SetMenuLocation(OnSelectedNode, "main_menu/tools/scripting/user_scripts/custom")
	meta.SetMenuLocation(OnSelectedNodeRecursively, "/menu_bar/help")

	visitor, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode))
	require.NoError(t, err)

	custom := menu.NewNavigator().FindChildByPath(root, "main_menu/tools/scripting/user_scripts/custom")
	require.NotNil(t, custom)
	assert.Equal(t, []string{ActionKey("export", OnSingleNode)}, childNames(custom), "同一位置只出现一次")

	help := menu.NewNavigator().FindChildByPath(root, "main_menu/help/help_misc")
	require.NotNil(t, help)
	assert.Equal(t, []string{ActionKey("export", OnSelectedNodeRecursively)}, childNames(help))

	assert.Equal(t, []string{
		"main_menu/help/help_misc/export",
		"main_menu/tools/scripting/user_scripts/custom/export",
	}, visitor.RegisteredLocations())
}

func TestVisitorModeWithoutLocationFallsBackToTarget(t *testing.T) {
	root, target := skeleton(t)
	meta := NewScriptMetaData("mixed", OnSingleNode, OnSelectedNode)
	meta.SetMenuLocation(OnSelectedNode, "main_menu_scripting/other")

	_, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode))
	require.NoError(t, err)

	assert.Equal(t, []string{ActionKey("mixed", OnSingleNode)}, childNames(target))
	other := menu.NewNavigator().FindChildByPath(root, "main_menu/tools/scripting/other")
	require.NotNil(t, other)
	assert.Equal(t, "Other", other.Title())
	assert.Equal(t, []string{ActionKey("mixed", OnSelectedNode)}, childNames(other))
}

func TestVisitorSiblingsShareCreatedLocation(t *testing.T) {
	root := menu.NewEntry("")
	mainMenu := menu.NewEntry("main_menu")
	require.NoError(t, root.AddChild(mainMenu))

	foo := NewScriptMetaData("Foo", OnSingleNode)
	foo.SetMenuLocation(OnSingleNode, "scripts/custom")
	bar := NewScriptMetaData("Bar", OnSingleNode)
	bar.SetMenuLocation(OnSingleNode, "scripts/custom")

	before := root.CountEntries()
	_, err := BuildMenu(root, configuration(t, foo, bar), StaticModeSelector(OnSingleNode),
		WithAliases(menu.Alias{Logical: "scripts", Canonical: "main_menu/scripts"}))
	require.NoError(t, err)

	// scripts、custom 两个新节点加两个脚本
	assert.Equal(t, before+4, root.CountEntries())
	custom := menu.NewNavigator().FindChildByPath(root, "main_menu/scripts/custom")
	require.NotNil(t, custom)
	assert.Equal(t, []string{ActionKey("Bar", OnSingleNode), ActionKey("Foo", OnSingleNode)}, childNames(custom))
	assert.Equal(t, 1, mainMenu.ChildCount())
}

func TestVisitorUserAliasOverridesBuiltin(t *testing.T) {
	root, _ := skeleton(t)
	meta := NewScriptMetaData("helper", OnSingleNode)
	meta.SetMenuLocation(OnSingleNode, "/menu_bar/help")

	visitor, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode),
		WithAliases(menu.Alias{Logical: "/menu_bar/help", Canonical: "main_menu/help"}))
	require.NoError(t, err)

	help := menu.NewNavigator().FindChildByPath(root, "main_menu/help")
	require.NotNil(t, help)
	assert.Equal(t, []string{"help_misc", ActionKey("helper", OnSingleNode)}, childNames(help))

	resolved, err := visitor.Navigator().Resolve("main_menu_scripting/scripts")
	require.NoError(t, err)
	assert.Equal(t, "main_menu/tools/scripting/user_scripts", resolved)
}

func TestVisitorWithoutBuilderTargetStillPlacesLocatedScripts(t *testing.T) {
	root := menu.NewEntry("")
	meta := NewScriptMetaData("standalone", OnSingleNode)
	meta.SetMenuLocation(OnSingleNode, "/menu_bar/extras")

	visitor, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode))
	require.NoError(t, err)

	extras := menu.NewNavigator().FindChildByPath(root, "main_menu/extras")
	require.NotNil(t, extras)
	assert.Equal(t, 1, extras.ChildCount())
	assert.Equal(t, StateDone, visitor.State())
}

func TestVisitorCustomFactoryAndTitle(t *testing.T) {
	root, _ := skeleton(t)
	meta := NewScriptMetaData("x", OnSingleNode)
	meta.SetMenuLocation(OnSingleNode, "main_menu_scripting/new_group")

	var requests []ActionRequest
	factory := func(req ActionRequest) menu.Action {
		requests = append(requests, req)
		return NewScriptAction(req)
	}
	_, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode),
		WithActionFactory(factory),
		WithTitleFunc(func(name string) string { return "<" + name + ">" }))
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, "/scripts/x.groovy", requests[0].ScriptPath)
	assert.True(t, requests[0].Enabled)
	group := menu.NewNavigator().FindChildByPath(root, "main_menu/tools/scripting/new_group")
	require.NotNil(t, group)
	assert.Equal(t, "<new_group>", group.Title())
}

func TestVisitorMissingMetaDataIsInternalError(t *testing.T) {
	root, _ := skeleton(t)
	provider := brokenProvider{refs: []ScriptRef{{Name: "ghost", Path: "/ghost.sh"}}}

	_, err := BuildMenu(root, provider, StaticModeSelector(OnSingleNode))
	require.Error(t, err)
	assert.True(t, errors.Is(err, menu.ErrInternal))

	var buildErr *menu.BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, menu.PhaseActions, buildErr.Phase)
}

func TestVisitorAliasCycleAbortsBuild(t *testing.T) {
	root, _ := skeleton(t)
	meta := NewScriptMetaData("loop", OnSingleNode)
	meta.SetMenuLocation(OnSingleNode, "a/x")

	_, err := BuildMenu(root, configuration(t, meta), StaticModeSelector(OnSingleNode),
		WithAliases(menu.Alias{Logical: "a", Canonical: "b"}, menu.Alias{Logical: "b", Canonical: "a"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, menu.ErrAliasCycle))
}

func TestVisitorStateTransitions(t *testing.T) {
	_, target := skeleton(t)
	visitor := NewMenuEntryVisitor(NewConfiguration(), StaticModeSelector(OnSingleNode))
	assert.Equal(t, StateNotStarted, visitor.State())
	assert.Nil(t, visitor.Navigator())
	assert.True(t, visitor.ShouldSkipChildren(target))

	require.NoError(t, visitor.Visit(target))
	assert.Equal(t, StateVisiting, visitor.State())
	assert.NotNil(t, visitor.Navigator())

	// 非根节点和其他阶段不触发放置
	require.NoError(t, visitor.BuildPhaseFinished(menu.PhaseActions, target))
	require.NoError(t, visitor.BuildPhaseFinished(menu.PhaseUI, target.Root()))
	assert.Equal(t, StateVisiting, visitor.State())

	require.NoError(t, visitor.BuildPhaseFinished(menu.PhaseActions, target.Root()))
	assert.Equal(t, StateDone, visitor.State())
	assert.ErrorIs(t, visitor.Visit(target), ErrBuildFinished)
}

func TestBuildStateString(t *testing.T) {
	assert.Equal(t, "NOT_STARTED", StateNotStarted.String())
	assert.Equal(t, "DONE", StateDone.String())
	assert.Equal(t, "BuildState(9)", BuildState(9).String())
}

type brokenProvider struct {
	refs []ScriptRef
}

func (p brokenProvider) Scripts() []ScriptRef { return p.refs }

func (p brokenProvider) MetaData(string) (*ScriptMetaData, bool) { return nil, false }
