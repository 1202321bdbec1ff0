package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/helper"
	"github.com/sjzsdu/scriptmenu/helper/renders"
	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/menu"
	"github.com/sjzsdu/scriptmenu/menu/output"
	"github.com/sjzsdu/scriptmenu/menu/tree"
	"github.com/sjzsdu/scriptmenu/share"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: lang.T("Build and print the script menu"),
	Long: `menu 命令扫描脚本目录，把脚本挂到菜单骨架上并输出结果。

示例：
  scriptmenu menu -d ./scripts                 # 以树状结构显示菜单
  scriptmenu menu -d ./scripts -o menu.pdf     # 导出为 PDF
  scriptmenu menu -d ./scripts --markdown      # 以 Markdown 渲染
  scriptmenu menu -r https://host/scripts.git  # 克隆仓库中的脚本
  scriptmenu menu -d ./scripts --browse        # 交互式浏览`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	addScriptFlags(menuCmd)
	menuCmd.Flags().StringVarP(&outputFile, "out", "o", "", lang.T("Output file name"))
	menuCmd.Flags().BoolVar(&markdownOut, "markdown", false, lang.T("Render the menu as markdown"))
	menuCmd.Flags().BoolVar(&browseMenu, "browse", false, lang.T("Browse the menu interactively"))
	menuCmd.Flags().BoolVar(&showDisabled, "disabled", true, lang.T("Show disabled entries"))
	menuCmd.Flags().BoolVarP(&showStats, "stats", "s", false, lang.T("Show menu statistics"))
	menuCmd.Flags().IntVar(&maxDepth, "depth", 0, lang.T("Limit menu depth (0 means unlimited)"))
}

func runMenu(cmd *cobra.Command, args []string) error {
	built, err := buildMenu()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if outputFile != "" {
		if err := output.Output(built.root, outputFile); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", lang.T("Menu written to"), outputFile)
		return nil
	}

	if err := printMenu(out, built.root); err != nil {
		return err
	}
	if showStats {
		fmt.Fprintf(out, "\n%s\n", tree.Stats(built.root).String())
		fmt.Fprintf(out, "%s: %d\n", lang.T("Entries visited"), built.visitor.EntriesVisited())
	}

	if browseMenu {
		browse(out, built.visitor.Navigator(), built.root)
	}
	return nil
}

// printMenu 按 renderer 配置输出菜单
func printMenu(out io.Writer, root *menu.Entry) error {
	renderer := config.GetConfigWithDefault(config.KeyRenderer, share.DEFAULT_RENDERER)
	if !markdownOut && renderer != "markdown" {
		_, err := io.WriteString(out, tree.TreeWithOptions(root, showDisabled, maxDepth))
		return err
	}

	md, err := renders.NewMarkdownRenderer(0)
	if err != nil {
		return err
	}
	return md.RenderTo(out, output.NewMarkdownExporter().Render(root))
}

// browse 循环读取菜单路径并显示对应子树，路径可以使用别名
func browse(out io.Writer, nav *menu.Navigator, root *menu.Entry) {
	var paths []string
	root.Walk(func(entry *menu.Entry) bool {
		if !entry.IsRoot() {
			paths = append(paths, entry.Path())
		}
		return true
	})
	for _, alias := range nav.Aliases() {
		paths = append(paths, alias.Logical)
	}

	promptText := lang.T("Type a menu path, empty line to quit") + "> "
	for {
		input := strings.TrimSpace(helper.ReadFromTerminal(promptText, paths))
		if input == "" {
			return
		}
		entry := nav.FindChildByPath(root, input)
		if entry == nil {
			fmt.Fprintf(out, "%s: %s\n", lang.T("entry not found"), input)
			continue
		}
		fmt.Fprint(out, tree.TreeWithOptions(entry, showDisabled, maxDepth))
		if tooltip := entry.Tooltip(); tooltip != "" {
			fmt.Fprintln(out, tooltip)
		}
	}
}
