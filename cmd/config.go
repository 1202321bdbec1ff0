package cmd

import (
	"fmt"
	"sort"

	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.T("Set config"),
	Long:  lang.T("Set global configuration"),
	RunE:  handleConfigCommand,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showAllConfigs, "list", "l", false, lang.T("List all configurations"))

	// 通过遍历 ConfigKeys 自动添加所有配置项
	for key, info := range config.ConfigKeys {
		configCmd.Flags().String(key, config.GetConfig(key), lang.T(info.Description))
	}
}

func sortedConfigKeys() []string {
	keys := make([]string, 0, len(config.ConfigKeys))
	for key := range config.ConfigKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func handleConfigCommand(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	out := cmd.OutOrStdout()
	if showAllConfigs {
		fmt.Fprintln(out, lang.T("Current configurations:"))
		listed := make(map[string]bool)
		for _, key := range sortedConfigKeys() {
			listed[config.GetEnvKey(key)] = true
			if value := config.GetConfig(key); value != "" {
				fmt.Fprintf(out, "%s=%s\n", config.GetEnvKey(key), value)
			}
		}
		// 配置文件中不再识别的键
		for _, name := range config.StoredKeys() {
			if !listed[name] {
				fmt.Fprintf(out, "%s=%s\n", name, config.GetConfig(name))
			}
		}
		return nil
	}

	configChanged := false
	for _, key := range sortedConfigKeys() {
		flag := cmd.Flag(key)
		if flag == nil || !flag.Changed {
			continue
		}
		value, _ := cmd.Flags().GetString(key)
		if err := config.ValidateValue(key, value); err != nil {
			return err
		}
		config.SetConfig(key, value)
		configChanged = true
	}

	if configChanged {
		if err := config.SaveConfig(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
	}
	return nil
}
