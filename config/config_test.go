package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should default to stdout output", func() {
			_ = Setup()
			So(viper.GetString(key.OutputPath), ShouldEqual, "-")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("colorapi.fn_mode")
			So(result, ShouldEqual, "colorapi_fn_mode")
		})
	})
}

func TestGroupSections(t *testing.T) {
	Convey("GroupSections", t, func() {
		viper.Set(groupsKey, []map[string]any{
			{"name": "split left", "keys": []string{"esc", "tab"}},
			{"name": "split right", "keys": []string{"enter"}},
			{"name": "solid all", "keys": []string{"esc"}},
		})
		Reset(func() { viper.Set(groupsKey, nil) })

		sections, err := GroupSections()
		So(err, ShouldBeNil)

		Convey("Preserves declaration order", func() {
			So(sections, ShouldResemble, []groups.Section{
				{Name: "split left", Keys: []string{"esc", "tab"}},
				{Name: "split right", Keys: []string{"enter"}},
				{Name: "solid all", Keys: []string{"esc"}},
			})
		})

		Convey("Derives distinct prefixes", func() {
			So(GroupPrefixes(sections), ShouldResemble, []string{"split", "solid"})
		})
	})
}
