package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/lsgit/internal/render"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := render.ParseTheme(cfg.Theme).String()
		for _, name := range render.ThemeNames() {
			marker := " "
			if name == current {
				marker = "*"
			}
			cmd.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
