// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/auth"
	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/icon"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd provides a parent command for managing scheme service credentials.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the color-scheme service bearer token",
	Long: `Store or remove the bearer token sent with color-scheme requests.
The token is kept in the system keyring and is only attached when ` + style.Bold(key.ColorAPIKeyringAuth) + ` is enabled.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.SetOut(os.Stdout)
}

// authSetCmd prompts for and persists the bearer token.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the bearer token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: "Bearer token for the scheme service",
		}, &token, survey.WithValidator(survey.Required)))

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token stored\n", icon.Get(icon.Success))

		if !viper.GetBool(key.ColorAPIKeyringAuth) {
			fmt.Printf(
				"%s enable %s to attach it to requests\n",
				icon.Get(icon.Progress),
				style.Fg(color.Yellow)(key.ColorAPIKeyringAuth),
			)
		}
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
	authDeleteCmd.SetOut(os.Stdout)
}

// authDeleteCmd removes the stored bearer token.
var authDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the bearer token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed\n", icon.Get(icon.Success))
	},
}
