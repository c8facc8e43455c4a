// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
	"github.com/monkeypaint-cli/monkeypaint/style"
)

func init() {
	rootCmd.AddCommand(modesCmd)

	modesCmd.Flags().BoolP("raw", "r", false, "Suppress annotations marking the configured defaults")
	modesCmd.SetOut(os.Stdout)
}

// modesCmd displays the generation modes understood by the default provider.
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Display the available scheme generation modes",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		for _, mode := range scheme.Modes() {
			if raw {
				cmd.Println(mode)
				continue
			}

			switch mode {
			case viper.GetString(key.ColorAPIMode):
				cmd.Printf("%s %s\n", mode, style.Fg(color.Green)("(main layer default)"))
			case viper.GetString(key.ColorAPIFnMode):
				cmd.Printf("%s %s\n", mode, style.Fg(color.Cyan)("(fn layer default)"))
			default:
				cmd.Println(mode)
			}
		}
	},
}
