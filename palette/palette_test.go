package palette

import (
	"math/rand"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/keyboard"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
)

func TestAssign(t *testing.T) {
	Convey("Assign", t, func() {
		order := []groups.ID{"g1", "g2", "g3", "g4"}

		Convey("Enough colors map one to one", func() {
			colors := []rgb.Color{
				{R: 1}, {R: 2}, {R: 3}, {R: 4},
			}
			p, err := Assign(order, colors)
			So(err, ShouldBeNil)
			So(p["g1"], ShouldResemble, colors[0])
			So(p["g4"], ShouldResemble, colors[3])
		})

		Convey("A short sequence wraps around in order", func() {
			colors := []rgb.Color{{R: 1}, {R: 2}}
			p, err := Assign(order, colors)
			So(err, ShouldBeNil)
			So(p["g1"], ShouldResemble, colors[0])
			So(p["g2"], ShouldResemble, colors[1])
			So(p["g3"], ShouldResemble, colors[0])
			So(p["g4"], ShouldResemble, colors[1])
		})

		Convey("An empty sequence is rejected", func() {
			_, err := Assign(order, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		reg, err := groups.New("zone", []groups.Section{
			{Name: "zone main", Keys: []string{"esc", "f1"}},
			{Name: "zone accent", Keys: []string{"enter"}},
		})
		So(err, ShouldBeNil)

		p := Palette{
			"zone main":   {R: 10},
			"zone accent": {R: 20},
		}
		fallback := rgb.Color{B: 5}
		m := p.Expand(reg, fallback)

		Convey("Every vocabulary key is covered", func() {
			So(len(m), ShouldEqual, keyboard.Count())
		})

		Convey("Grouped keys receive their group color", func() {
			So(m["esc"], ShouldResemble, rgb.Color{R: 10})
			So(m["f1"], ShouldResemble, rgb.Color{R: 10})
			So(m["enter"], ShouldResemble, rgb.Color{R: 20})
		})

		Convey("Ungrouped keys receive the fallback", func() {
			So(m["q"], ShouldResemble, fallback)
			So(m["pgdn"], ShouldResemble, fallback)
		})
	})
}

func TestBaseSelector(t *testing.T) {
	Convey("BaseSelector", t, func() {
		Convey("An explicit color above the minimum passes through", func() {
			s := BaseSelector{
				Explicit: mo.Some(rgb.Color{R: 200, G: 200}),
				Minimum:  192,
			}
			c, err := s.Select()
			So(err, ShouldBeNil)
			So(c, ShouldResemble, rgb.Color{R: 200, G: 200})
		})

		Convey("A dim explicit color is rejected", func() {
			s := BaseSelector{
				Explicit: mo.Some(rgb.Color{R: 100, G: 100, B: 100}),
				Minimum:  384,
			}
			_, err := s.Select()
			So(err, ShouldNotBeNil)

			conerr, ok := err.(*ConstraintError)
			So(ok, ShouldBeTrue)
			So(conerr.Required, ShouldEqual, 384)
			So(conerr.Actual, ShouldEqual, 300)
		})

		Convey("Without an explicit color a random draw satisfies the minimum", func() {
			s := BaseSelector{
				Minimum: 600,
				Rand:    rand.New(rand.NewSource(7)),
			}
			c, err := s.Select()
			So(err, ShouldBeNil)
			So(c.Brightness(), ShouldBeGreaterThanOrEqualTo, 600)
		})

		Convey("An impossible minimum surfaces the generation error", func() {
			s := BaseSelector{
				Minimum:     rgb.MaxBrightness + 1,
				Rand:        rand.New(rand.NewSource(7)),
				MaxAttempts: 25,
			}
			_, err := s.Select()
			So(err, ShouldNotBeNil)
		})
	})
}
