// Package cmd implements the command-line interface for monkeypaint.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/monkeypaint-cli/monkeypaint/generate"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates the JSON schema for structured --json output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured profile output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "groupcolor":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&generate.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
