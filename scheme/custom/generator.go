// Package custom provides a bridge between the Go core and Lua-based scheme generator scripts.
package custom

import (
	"context"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/monkeypaint-cli/monkeypaint/constant"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
)

// luaGenerator adapts a loaded Lua script to the scheme.Provider capability.
type luaGenerator struct {
	name  string
	state *lua.LState

	// The Lua state is single-threaded; concurrent layer generation must
	// serialize its calls.
	mu sync.Mutex
}

// Name returns the generator name.
func (g *luaGenerator) Name() string {
	return g.name
}

// Generate invokes the script's GenerateScheme function and converts its
// returned table of hex strings. Script errors, malformed entries and empty
// tables surface as scheme.Unavailable.
func (g *luaGenerator) Generate(ctx context.Context, base rgb.Color, mode string, count int) ([]rgb.Color, error) {
	if err := ctx.Err(); err != nil {
		return nil, &scheme.Unavailable{Provider: g.name, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.SetContext(ctx)
	defer g.state.RemoveContext()

	err := g.state.CallByParam(lua.P{
		Fn:      g.state.GetGlobal(constant.GenerateSchemeFn),
		NRet:    1,
		Protect: true,
	}, lua.LString(base.Hex()), lua.LString(mode), lua.LNumber(count))
	if err != nil {
		return nil, &scheme.Unavailable{Provider: g.name, Err: err}
	}

	retval := g.state.Get(-1)
	g.state.Pop(1)

	table, ok := retval.(*lua.LTable)
	if !ok {
		return nil, &scheme.Unavailable{
			Provider: g.name,
			Err: fmt.Errorf(
				"%s returned %s, expected a table",
				constant.GenerateSchemeFn, retval.Type(),
			),
		}
	}

	var colors []rgb.Color
	var convErr error
	table.ForEach(func(_, v lua.LValue) {
		if convErr != nil {
			return
		}

		c, err := rgb.Parse(v.String())
		if err != nil {
			convErr = err
			return
		}
		colors = append(colors, c)
	})

	if convErr != nil {
		return nil, &scheme.Unavailable{Provider: g.name, Err: convErr}
	}

	if len(colors) == 0 {
		return nil, &scheme.Unavailable{
			Provider: g.name,
			Err:      fmt.Errorf("%s returned an empty scheme", constant.GenerateSchemeFn),
		}
	}

	return colors, nil
}
