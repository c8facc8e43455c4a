package provider

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/where"
)

func TestBuiltins(t *testing.T) {
	Convey("Builtins", t, func() {
		builtins := Builtins()
		So(builtins, ShouldNotBeEmpty)
		So(builtins[0].Name, ShouldEqual, "thecolorapi")
		So(builtins[0].IsCustom, ShouldBeFalse)
	})
}

func TestGet(t *testing.T) {
	Convey("Get", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		Convey("Finds a builtin by name", func() {
			p, ok := Get("thecolorapi")
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "thecolorapi")
		})

		Convey("Finds an installed Lua generator", func() {
			script := []byte("function GenerateScheme(seed, mode, count) return { seed } end\n")
			path := filepath.Join(where.Generators(), "shades.lua")
			So(filesystem.API().WriteFile(path, script, 0644), ShouldBeNil)

			p, ok := Get("shades")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeTrue)

			g, err := p.Create()
			So(err, ShouldBeNil)
			So(g.Name(), ShouldEqual, "shades")
		})

		Convey("Reports unknown names", func() {
			_, ok := Get("nonexistent")
			So(ok, ShouldBeFalse)
		})
	})
}
