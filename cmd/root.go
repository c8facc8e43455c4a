// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/config"
	"github.com/monkeypaint-cli/monkeypaint/constant"
	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/generate"
	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/icon"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/log"
	"github.com/monkeypaint-cli/monkeypaint/provider"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
	"github.com/monkeypaint-cli/monkeypaint/style"
	"github.com/monkeypaint-cli/monkeypaint/tui"
	"github.com/monkeypaint-cli/monkeypaint/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("output", "O", "", "Write the lighting profile to this path (\"-\" for stdout)")
	rootCmd.Flags().StringP("prefix", "p", "", "Section-name prefix selecting the group definitions to use")
	rootCmd.Flags().StringP("generator", "g", "", "Scheme generator to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("generator", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range provider.Builtins() {
			names = append(names, p.Name)
		}
		for _, p := range provider.Customs() {
			names = append(names, p.Name)
		}
		return names, cobra.ShellCompDirectiveDefault
	}))

	rootCmd.Flags().BoolP("json", "j", false, "Emit a structured JSON description instead of the profile")
	rootCmd.Flags().BoolP("preview", "P", false, "Preview the palette interactively before writing")
	rootCmd.Flags().BoolP("force", "f", false, "Overwrite an existing destination file without confirmation")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point: generating a lighting profile.
var rootCmd = &cobra.Command{
	Use:   constant.Monkeypaint + " [hex color or minimum brightness]",
	Short: "Generate backlight palettes for the Kinesis Freestyle Edge",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Generate backlight palettes for the Kinesis Freestyle Edge"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := &generate.Options{
			Json: lo.Must(cmd.Flags().GetBool("json")),
		}

		if len(args) == 1 {
			base, minimum, err := parseSeedArgument(args[0])
			handleErr(err)
			options.Base = base
			options.MinimumBase = minimum
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			options.Output = mo.Some(output)
		}

		sections, err := config.GroupSections()
		handleErr(err)
		options.Sections = sections

		prefix, err := resolvePrefix(lo.Must(cmd.Flags().GetString("prefix")), sections)
		handleErr(err)
		options.Prefix = mo.Some(prefix)

		options.Provider, err = resolveProvider(lo.Must(cmd.Flags().GetString("generator")))
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("force")) && !options.Json {
			handleErr(confirmOverwrite(options.Output.OrElse(viper.GetString(key.OutputPath))))
		}

		if lo.Must(cmd.Flags().GetBool("preview")) {
			handleErr(tui.Run(options))
			return
		}

		handleErr(generate.Run(options))
	},
}

// parseSeedArgument interprets the positional argument as either an explicit
// hex base color or a minimum brightness override.
func parseSeedArgument(arg string) (base mo.Option[rgb.Color], minimum mo.Option[int], err error) {
	if n, convErr := strconv.Atoi(arg); convErr == nil {
		if n < 0 || n > rgb.MaxBrightness {
			return base, minimum, fmt.Errorf(
				"minimum brightness %d is not in range 0-%d", n, rgb.MaxBrightness,
			)
		}
		return base, mo.Some(n), nil
	}

	c, parseErr := rgb.Parse(arg)
	if parseErr != nil {
		return base, minimum, fmt.Errorf(
			"seed %q is not a hex color or a minimum brightness", arg,
		)
	}
	return mo.Some(c), minimum, nil
}

// resolvePrefix picks the grouping prefix: an explicit flag wins, then the
// configured default if any section matches it, then an interactive selection
// when several candidate prefixes are declared.
func resolvePrefix(flag string, sections []groups.Section) (string, error) {
	if flag != "" {
		return flag, nil
	}

	configured := viper.GetString(key.PaletteGroupPrefix)
	matches := func(prefix string) bool {
		return lo.SomeBy(sections, func(s groups.Section) bool {
			return strings.HasPrefix(s.Name, prefix)
		})
	}
	if matches(configured) {
		return configured, nil
	}

	candidates := config.GroupPrefixes(sections)
	if len(candidates) == 0 {
		return configured, nil // Let the registry report the real error.
	}
	if len(candidates) == 1 || !term.IsTerminal(int(os.Stdin.Fd())) {
		return candidates[0], nil
	}

	var chosen string
	err := survey.AskOne(&survey.Select{
		Message: "Which group set should be painted?",
		Options: candidates,
	}, &chosen)
	return chosen, err
}

// resolveProvider instantiates the selected scheme generator.
func resolveProvider(flag string) (p scheme.Provider, err error) {
	name := flag
	if name == "" {
		name = viper.GetString(key.ColorAPIProvider)
	}

	registered, ok := provider.Get(name)
	if !ok {
		return nil, errUnknownGenerator(name)
	}
	return registered.Create()
}

// confirmOverwrite asks before clobbering an existing destination file.
// Non-interactive invocations proceed silently, matching --force.
func confirmOverwrite(destination string) error {
	if destination == "-" {
		return nil
	}

	exists, err := filesystem.API().Exists(destination)
	if err != nil || !exists {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite it?", destination),
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return err
	}
	if !confirmed {
		return errors.New("aborted: destination left untouched")
	}
	return nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
