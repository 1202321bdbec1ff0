package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/share"
	"github.com/spf13/cobra"
)

var RootCmd = rootCmd

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("scriptmenu command line tool"),
	Long:  lang.T("Build script menus from script directories"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有参数，显示帮助信息
		if len(args) == 0 {
			cmd.Help()
			return
		}
		fmt.Fprintln(os.Stderr, lang.T("Invalid arguments")+": ", args)
		os.Exit(1)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	// 设置全局 debug 模式
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
	}
}

// addScriptFlags 注册与脚本来源相关的参数
func addScriptFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&scriptDirs, "directory", "d", nil, lang.T("Script directories"))
	cmd.Flags().StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone scripts from"))
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", lang.T("Selected execution mode"))
	cmd.Flags().StringVar(&menuFile, "menu", "", lang.T("Menu skeleton YAML file"))
}
