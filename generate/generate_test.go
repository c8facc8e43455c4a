package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
)

// stubProvider serves canned schemes per mode without touching the network.
type stubProvider struct {
	schemes map[string][]rgb.Color
	failOn  string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(ctx context.Context, base rgb.Color, mode string, count int) ([]rgb.Color, error) {
	if mode == s.failOn {
		return nil, &scheme.Unavailable{Provider: s.Name(), Err: errors.New("stubbed failure")}
	}
	return s.schemes[mode], nil
}

func setupViper() {
	viper.Set(key.ColorAPIMode, "analogic")
	viper.Set(key.ColorAPIFnMode, "monochrome")
	viper.Set(key.ColorAPITimeoutSeconds, 5)
	viper.Set(key.PaletteMinimumBase, 192)
	viper.Set(key.PaletteDefaultColor, "#000000")
	viper.Set(key.OutputPath, "-")
}

func testOptions(out *bytes.Buffer) *Options {
	return &Options{
		Out:  out,
		Base: mo.Some(rgb.Color{R: 255, G: 128}),
		Sections: []groups.Section{
			{Name: "zone left", Keys: []string{"esc", "tab"}},
			{Name: "zone right", Keys: []string{"enter"}},
		},
		Prefix: mo.Some("zone"),
		Provider: &stubProvider{
			schemes: map[string][]rgb.Color{
				"analogic":   {{R: 10}, {R: 20}},
				"monochrome": {{B: 30}},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	Convey("Build", t, func() {
		setupViper()
		var out bytes.Buffer
		options := testOptions(&out)

		Convey("Produces palettes for both layers", func() {
			result, err := Build(options)
			So(err, ShouldBeNil)

			So(result.Base, ShouldResemble, rgb.Color{R: 255, G: 128})
			So(result.MainPalette["zone left"], ShouldResemble, rgb.Color{R: 10})
			So(result.MainPalette["zone right"], ShouldResemble, rgb.Color{R: 20})

			// A single fn color wraps over every group.
			So(result.FnPalette["zone left"], ShouldResemble, rgb.Color{B: 30})
			So(result.FnPalette["zone right"], ShouldResemble, rgb.Color{B: 30})
		})

		Convey("Ungrouped keys fall back to the configured default", func() {
			viper.Set(key.PaletteDefaultColor, "#102030")

			result, err := Build(options)
			So(err, ShouldBeNil)
			So(result.Main["q"], ShouldResemble, rgb.Color{R: 0x10, G: 0x20, B: 0x30})
		})

		Convey("Is deterministic for identical inputs", func() {
			a, err := Build(options)
			So(err, ShouldBeNil)
			b, err := Build(options)
			So(err, ShouldBeNil)
			So(bytes.Equal(a.Encoded, b.Encoded), ShouldBeTrue)
		})

		Convey("A dim explicit base is rejected before any fetch", func() {
			options.Base = mo.Some(rgb.Color{R: 10})
			_, err := Build(options)
			So(err, ShouldNotBeNil)
		})

		Convey("A failing layer aborts the build", func() {
			options.Provider.(*stubProvider).failOn = "monochrome"
			_, err := Build(options)
			So(err, ShouldNotBeNil)

			var unavailable *scheme.Unavailable
			So(errors.As(err, &unavailable), ShouldBeTrue)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		setupViper()
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		var out bytes.Buffer
		options := testOptions(&out)

		Convey("A dash destination writes the profile to the stream", func() {
			err := Run(options)
			So(err, ShouldBeNil)
			So(out.String(), ShouldStartWith, "[esc]>[10][0][0]\r\n")
			So(out.String(), ShouldEndWith, "\r\n")
		})

		Convey("A file destination is written atomically", func() {
			options.Output = mo.Some("profile.txt")
			err := Run(options)
			So(err, ShouldBeNil)
			So(out.Len(), ShouldEqual, 0)

			data, err := filesystem.API().ReadFile("profile.txt")
			So(err, ShouldBeNil)
			So(strings.HasPrefix(string(data), "[esc]>[10][0][0]\r\n"), ShouldBeTrue)
		})

		Convey("Nothing is written when a layer fails", func() {
			options.Output = mo.Some("profile.txt")
			options.Provider.(*stubProvider).failOn = "analogic"

			err := Run(options)
			So(err, ShouldNotBeNil)

			exists, err := filesystem.API().Exists("profile.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Json mode emits a structured description instead", func() {
			options.Json = true
			err := Run(options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Base, ShouldEqual, "#ff8000")
			So(output.Prefix, ShouldEqual, "zone")
			So(output.Groups, ShouldHaveLength, 2)
			So(output.Groups[0].Group, ShouldEqual, "zone left")
			So(output.Groups[0].Main, ShouldEqual, "#0a0000")
			So(output.Profile, ShouldStartWith, "[esc]>")
		})
	})
}
