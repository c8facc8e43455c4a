// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/constant"
	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/icon"
	"github.com/monkeypaint-cli/monkeypaint/provider"
	"github.com/monkeypaint-cli/monkeypaint/style"
	"github.com/monkeypaint-cli/monkeypaint/util"
	"github.com/monkeypaint-cli/monkeypaint/where"
)

// errUnknownGenerator reports a misspelled generator name with a suggestion.
func errUnknownGenerator(name string) error {
	var names []string
	for _, p := range provider.Builtins() {
		names = append(names, p.Name)
	}
	for _, p := range provider.Customs() {
		names = append(names, p.Name)
	}

	if len(names) == 0 {
		return fmt.Errorf("unknown generator %s", style.Fg(color.Red)(name))
	}

	closest := lo.MinBy(names, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf(
		"unknown generator %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func init() {
	rootCmd.AddCommand(generatorsCmd)
}

// generatorsCmd provides a parent command for managing scheme generators.
var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "Manage built-in and custom scheme generators",
}

func init() {
	generatorsCmd.AddCommand(generatorsListCmd)

	generatorsListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	generatorsListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua generators")
	generatorsListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in generators")

	generatorsListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	generatorsListCmd.SetOut(os.Stdout)
}

// generatorsListCmd displays a summary of all registered scheme generators.
var generatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered scheme generators",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				cmd.Println(p.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	generatorsCmd.AddCommand(generatorsRemoveCmd)

	generatorsRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom generator(s) to uninstall")
	lo.Must0(generatorsRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		scripts, err := filesystem.API().ReadDir(where.Generators())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(scripts, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if filepath.Ext(name) != ".lua" {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// generatorsRemoveCmd facilitates the uninstallation of custom Lua generators.
var generatorsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua generators from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Generators(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	generatorsCmd.AddCommand(generatorsNewCmd)

	generatorsNewCmd.Flags().StringP("name", "n", "", "The display name of the new scheme generator")

	lo.Must0(generatorsNewCmd.MarkFlagRequired("name"))
}

// generatorsNewCmd scaffolds a boilerplate Lua generator script.
var generatorsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua generator script using a predefined template",
	Long:  `Generate a boilerplate Lua generator script with the required entry point and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name             string
			Author           string
			GenerateSchemeFn string
		}{
			Name:             lo.Must(cmd.Flags().GetString("name")),
			Author:           author,
			GenerateSchemeFn: constant.GenerateSchemeFn,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("generator").Funcs(funcMap).Parse(constant.GeneratorTemplate)
		handleErr(err)

		target := filepath.Join(where.Generators(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
