// Package provider manages built-in and custom color-scheme generators.
package provider

import (
	"path/filepath"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
	"github.com/monkeypaint-cli/monkeypaint/scheme/colorapi"
	"github.com/monkeypaint-cli/monkeypaint/scheme/custom"
	"github.com/monkeypaint-cli/monkeypaint/util"
	"github.com/monkeypaint-cli/monkeypaint/where"
)

// Provider represents a registered scheme generator.
type Provider struct {
	ID       string
	Name     string
	IsCustom bool // Reserved for Lua-based generators.
	Create   func() (scheme.Provider, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in generators.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   colorapi.Name,
			Name: colorapi.Name,
			Create: func() (scheme.Provider, error) {
				return colorapi.NewFromConfig(), nil
			},
		},
	}
}

// Customs returns all available Lua generators.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// Get finds a generator by name, searching built-ins before custom scripts.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range Customs() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders enumerates the Lua generator scripts installed under the
// generators directory.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Generators())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		path := filepath.Join(where.Generators(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			Create: func() (scheme.Provider, error) {
				return custom.LoadGenerator(path)
			},
		})
	}

	return providers, nil
}
