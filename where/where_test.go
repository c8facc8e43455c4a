package where

import (
	"testing"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Generators()", func() {
			path := Generators()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("SchemeCache()", func() {
			So(SchemeCache(), ShouldEndWith, "schemes.json")
		})
	})
}

func TestConfigOverride(t *testing.T) {
	Convey("MONKEYPAINT_CONFIG_PATH override", t, func() {
		t.Setenv(EnvConfigPath, "custom-config")
		So(Config(), ShouldEqual, "custom-config")
	})
}
