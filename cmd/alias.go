package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sjzsdu/scriptmenu/helper"
	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/scripting"
	"github.com/spf13/cobra"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: lang.T("Manage menu path aliases"),
	Long: `alias 命令管理持久化的菜单路径别名，构建菜单时在内置别名之后注册。

示例：
  scriptmenu alias --add tools=main_menu/tools
  scriptmenu alias --remove tools
  scriptmenu alias -l`,
	RunE: runAlias,
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	aliasCmd.Flags().StringVar(&addAlias, "add", "", lang.T("Add an alias (logical=canonical)"))
	aliasCmd.Flags().StringVar(&removeAlias, "remove", "", lang.T("Remove an alias"))
	aliasCmd.Flags().BoolVarP(&listAliases, "list", "l", false, lang.T("List aliases"))
	aliasCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, lang.T("Assume yes for all prompts"))
}

func runAlias(cmd *cobra.Command, args []string) error {
	store, err := scripting.NewAliasStore()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case addAlias != "":
		logical, canonical, ok := strings.Cut(addAlias, "=")
		if !ok {
			return errors.New(lang.T("Invalid arguments") + ": " + addAlias)
		}
		if !assumeYes {
			exists, err := aliasExists(store, logical)
			if err != nil {
				return err
			}
			if exists {
				yes, err := helper.PromptYesNo(cmd.InOrStdin(), out, lang.T("Alias already exists, overwrite?")+" [Y/n] ", true)
				if err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(out, lang.T("Alias not changed"))
					return nil
				}
			}
		}
		if err := store.Add(logical, canonical); err != nil {
			return err
		}
		fmt.Fprintln(out, lang.T("Alias saved"))

	case removeAlias != "":
		removed, err := store.Remove(removeAlias)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%s: %s", lang.T("Alias not found"), removeAlias)
		}
		fmt.Fprintln(out, lang.T("Alias removed"))

	default:
		aliases, err := store.Load()
		if err != nil {
			return err
		}
		if len(aliases) == 0 {
			fmt.Fprintln(out, lang.T("No aliases defined"))
			return nil
		}
		for _, alias := range aliases {
			fmt.Fprintf(out, "%s=%s\n", alias.Logical, alias.Canonical)
		}
	}
	return nil
}

func aliasExists(store *scripting.AliasStore, logical string) (bool, error) {
	aliases, err := store.Load()
	if err != nil {
		return false, err
	}
	logical = helper.JoinMenuPath(logical)
	for _, alias := range aliases {
		if helper.JoinMenuPath(alias.Logical) == logical {
			return true, nil
		}
	}
	return false, nil
}
