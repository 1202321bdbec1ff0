package cmd

import (
	"fmt"

	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of scriptmenu"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", lang.T("scriptmenu version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
