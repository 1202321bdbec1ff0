package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/helper"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/sjzsdu/scriptmenu/menu/loader"
	"github.com/sjzsdu/scriptmenu/scripting"
	"github.com/sjzsdu/scriptmenu/share"
)

// builtMenu 一次构建的结果
type builtMenu struct {
	root    *menu.Entry
	visitor *scripting.MenuEntryVisitor
	conf    *scripting.Configuration
}

// discoverScripts 扫描命令行或配置中的脚本目录，指定仓库时先克隆
// 返回的 cleanup 用于删除克隆的临时目录
func discoverScripts() (*scripting.Configuration, func(), error) {
	dirs := scriptDirs
	if len(dirs) == 0 {
		dirs = config.GetConfigList(config.KeyScriptDirs)
	}

	cleanup := func() {}
	if repoURL != "" {
		var progress io.Writer
		if share.IsDebug() {
			progress = os.Stderr
		}
		cloned, err := helper.CloneRepository(repoURL, progress)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { os.RemoveAll(cloned) }
		dirs = append(dirs, cloned)
	}

	conf, err := scripting.Discover(dirs...)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return conf, cleanup, nil
}

func modeSelector() (scripting.ModeSelector, error) {
	if modeName == "" {
		return scripting.ConfigModeSelector{}, nil
	}
	mode, err := scripting.ParseExecutionMode(modeName)
	if err != nil {
		return nil, err
	}
	return scripting.StaticModeSelector(mode), nil
}

func loadSkeleton() (*menu.Entry, error) {
	if menuFile != "" {
		return loader.LoadFile(menuFile)
	}
	return loader.Default()
}

func loadAliases() ([]menu.Alias, error) {
	store, err := scripting.NewAliasStore()
	if err != nil {
		return nil, err
	}
	return store.Load()
}

// buildMenu 发现脚本并构建完整菜单
func buildMenu() (*builtMenu, error) {
	conf, cleanup, err := discoverScripts()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	selector, err := modeSelector()
	if err != nil {
		return nil, err
	}
	root, err := loadSkeleton()
	if err != nil {
		return nil, err
	}
	aliases, err := loadAliases()
	if err != nil {
		return nil, fmt.Errorf("读取别名失败: %w", err)
	}

	visitor, err := scripting.BuildMenu(root, conf, selector, scripting.WithAliases(aliases...))
	if err != nil {
		return nil, err
	}
	return &builtMenu{root: root, visitor: visitor, conf: conf}, nil
}
