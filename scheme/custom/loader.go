// Package custom provides a bridge between the Go core and Lua-based scheme generator scripts.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"

	"github.com/monkeypaint-cli/monkeypaint/constant"
	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
	"github.com/monkeypaint-cli/monkeypaint/util"
)

// IDfromName generates a canonical generator identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadGenerator initializes a scheme.Provider by executing and validating a
// Lua generator script. The script must define a global GenerateScheme
// function taking (seed hex string, mode string, count number) and returning
// a table of hex color strings.
func LoadGenerator(path string) (scheme.Provider, error) {
	script, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	state := lua.NewState()
	libs.Preload(state)

	if err := state.DoString(string(script)); err != nil {
		return nil, fmt.Errorf("load generator script %s: %w", path, err)
	}

	name := util.FileStem(path)
	if state.GetGlobal(constant.GenerateSchemeFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf(
			"function %s is required but not defined in %s",
			constant.GenerateSchemeFn, name,
		)
	}

	return &luaGenerator{name: name, state: state}, nil
}
