// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/config"
	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/keyboard"
	"github.com/monkeypaint-cli/monkeypaint/style"
)

func init() {
	rootCmd.AddCommand(keysCmd)

	keysCmd.Flags().StringP("filter", "f", "", "Fuzzy-match key names against this pattern")
	keysCmd.Flags().StringP("groups", "g", "", "Annotate each key with its group under this prefix")
	keysCmd.SetOut(os.Stdout)
}

// keysCmd displays the supported key vocabulary in device slot order.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Display the supported key names in device slot order",
	Long: `Display every key name the lighting profile can address, in the order
the device firmware expects them. Keys can be fuzzy-filtered and annotated
with the group they resolve to under a given prefix.`,
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.Map(keyboard.Vocabulary(), func(k keyboard.Key, _ int) string {
			return string(k)
		})

		if pattern := lo.Must(cmd.Flags().GetString("filter")); pattern != "" {
			names = fuzzy.FindFold(pattern, names)
		}

		var registry *groups.Registry
		if prefix := lo.Must(cmd.Flags().GetString("groups")); prefix != "" {
			sections, err := config.GroupSections()
			handleErr(err)

			registry, err = groups.New(prefix, sections)
			handleErr(err)
		}

		for _, name := range names {
			if registry == nil {
				cmd.Println(name)
				continue
			}

			if id, ok := registry.Of(keyboard.Key(name)); ok {
				cmd.Printf("%s %s\n", name, style.Fg(color.Cyan)(string(id)))
			} else {
				cmd.Printf("%s %s\n", name, style.Faint("(unassigned)"))
			}
		}
	},
}
