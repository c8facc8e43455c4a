package custom

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
)

func writeScript(path, script string) {
	err := filesystem.API().WriteFile(path, []byte(script), 0644)
	So(err, ShouldBeNil)
}

func TestLoadGenerator(t *testing.T) {
	Convey("LoadGenerator", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		Convey("A valid script loads under its file stem", func() {
			writeScript("shades.lua", `
function GenerateScheme(seed, mode, count)
	return { seed }
end
`)
			g, err := LoadGenerator("shades.lua")
			So(err, ShouldBeNil)
			So(g.Name(), ShouldEqual, "shades")
		})

		Convey("A script without the entry point is rejected", func() {
			writeScript("broken.lua", `local x = 1`)
			_, err := LoadGenerator("broken.lua")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "GenerateScheme")
		})

		Convey("A script with a syntax error is rejected", func() {
			writeScript("syntax.lua", `function (`)
			_, err := LoadGenerator("syntax.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("A missing file is reported", func() {
			_, err := LoadGenerator("absent.lua")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		load := func(script string) scheme.Provider {
			writeScript("gen.lua", script)
			g, err := LoadGenerator("gen.lua")
			So(err, ShouldBeNil)
			return g
		}

		Convey("Receives the seed, mode and count", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	assert(seed == "ff8000")
	assert(mode == "analogic")
	assert(count == 3)
	return { "#0000ff", seed }
end
`)
			colors, err := g.Generate(context.Background(), rgb.Color{R: 255, G: 128}, "analogic", 3)
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []rgb.Color{
				{B: 255},
				{R: 255, G: 128},
			})
		})

		Convey("A script error surfaces as Unavailable", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	error("boom")
end
`)
			_, err := g.Generate(context.Background(), rgb.Color{}, "analogic", 1)
			So(err, ShouldNotBeNil)

			var unavailable *scheme.Unavailable
			So(errors.As(err, &unavailable), ShouldBeTrue)
		})

		Convey("A non-table return surfaces as Unavailable", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	return "ff0000"
end
`)
			_, err := g.Generate(context.Background(), rgb.Color{}, "analogic", 1)
			So(err, ShouldNotBeNil)
		})

		Convey("An empty table surfaces as Unavailable", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	return {}
end
`)
			_, err := g.Generate(context.Background(), rgb.Color{}, "analogic", 1)
			So(err, ShouldNotBeNil)
		})

		Convey("A malformed color surfaces as Unavailable", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	return { "not-a-color" }
end
`)
			_, err := g.Generate(context.Background(), rgb.Color{}, "analogic", 1)
			So(err, ShouldNotBeNil)
		})

		Convey("A cancelled context aborts before calling the script", func() {
			g := load(`
function GenerateScheme(seed, mode, count)
	return { seed }
end
`)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := g.Generate(ctx, rgb.Color{}, "analogic", 1)
			So(err, ShouldNotBeNil)
		})
	})
}
