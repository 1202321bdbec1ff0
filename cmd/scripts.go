package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sjzsdu/scriptmenu/config"
	"github.com/sjzsdu/scriptmenu/helper/renders"
	"github.com/sjzsdu/scriptmenu/lang"
	"github.com/sjzsdu/scriptmenu/scripting"
	"github.com/sjzsdu/scriptmenu/share"
	"github.com/spf13/cobra"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: lang.T("List discovered scripts"),
	RunE:  runScripts,
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	scriptsCmd.Flags().StringSliceVarP(&scriptDirs, "directory", "d", nil, lang.T("Script directories"))
	scriptsCmd.Flags().StringVarP(&repoURL, "repository", "r", "", lang.T("Git repository URL to clone scripts from"))
	scriptsCmd.Flags().BoolVar(&markdownOut, "markdown", false, lang.T("Render the menu as markdown"))
}

func runScripts(cmd *cobra.Command, args []string) error {
	conf, cleanup, err := discoverScripts()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	if conf.IsEmpty() {
		fmt.Fprintln(out, lang.T("No scripts found"))
		return nil
	}

	renderer := config.GetConfigWithDefault(config.KeyRenderer, share.DEFAULT_RENDERER)
	if markdownOut || renderer == "markdown" {
		md, err := renders.NewMarkdownRenderer(0)
		if err != nil {
			return err
		}
		return md.RenderTo(out, scriptsMarkdown(conf))
	}
	return writeScriptsTable(out, conf)
}

type scriptRow struct {
	name, modes, locations, permissions, path string
}

func scriptRows(conf *scripting.Configuration) []scriptRow {
	var rows []scriptRow
	for _, ref := range conf.Scripts() {
		meta, ok := conf.MetaData(ref.Name)
		if !ok {
			continue
		}
		var modes, locations []string
		for _, mode := range meta.ExecutionModes() {
			modes = append(modes, mode.String())
			if location := meta.MenuLocation(mode); location != "" {
				locations = append(locations, mode.String()+"="+location)
			}
		}
		if len(locations) == 0 {
			locations = append(locations, "-")
		}
		rows = append(rows, scriptRow{
			name:        ref.Name,
			modes:       strings.Join(modes, ","),
			locations:   strings.Join(locations, " "),
			permissions: meta.Permissions.String(),
			path:        ref.Path,
		})
	}
	return rows
}

func writeScriptsTable(out io.Writer, conf *scripting.Configuration) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODES\tLOCATIONS\tPERMISSIONS\tPATH")
	for _, row := range scriptRows(conf) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.name, row.modes, row.locations, row.permissions, row.path)
	}
	return w.Flush()
}

func scriptsMarkdown(conf *scripting.Configuration) string {
	var b strings.Builder
	b.WriteString("| Name | Modes | Locations | Permissions | Path |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, row := range scriptRows(conf) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | `%s` |\n", row.name, row.modes, row.locations, row.permissions, row.path)
	}
	return b.String()
}
