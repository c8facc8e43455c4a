package rgb

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should accept a bare hex string", func() {
			c, err := Parse("ff8000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Color{R: 255, G: 128, B: 0})
		})

		Convey("Should accept a leading #", func() {
			c, err := Parse("#336699")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Color{R: 0x33, G: 0x66, B: 0x99})
		})

		Convey("Should reject short strings", func() {
			_, err := Parse("fff")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject non-hex digits", func() {
			_, err := Parse("zzzzzz")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEncoding(t *testing.T) {
	Convey("Hex and String", t, func() {
		c := Color{R: 255, G: 8, B: 0}
		So(c.Hex(), ShouldEqual, "ff0800")
		So(c.String(), ShouldEqual, "#ff0800")
	})
}

func TestBrightness(t *testing.T) {
	Convey("Brightness", t, func() {
		So(Color{}.Brightness(), ShouldEqual, 0)
		So(Color{R: 255, G: 255, B: 255}.Brightness(), ShouldEqual, MaxBrightness)
		So(Color{R: 64, G: 128, B: 0}.Brightness(), ShouldEqual, 192)
	})
}

func TestRandomAbove(t *testing.T) {
	Convey("RandomAbove", t, func() {
		Convey("Should satisfy the requested minimum", func() {
			src := rand.New(rand.NewSource(1))
			for i := 0; i < 100; i++ {
				c, err := RandomAbove(src, 192, 0)
				So(err, ShouldBeNil)
				So(c.Brightness(), ShouldBeGreaterThanOrEqualTo, 192)
			}
		})

		Convey("Should be deterministic for a fixed source", func() {
			a, err := RandomAbove(rand.New(rand.NewSource(42)), 192, 0)
			So(err, ShouldBeNil)
			b, err := RandomAbove(rand.New(rand.NewSource(42)), 192, 0)
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
		})

		Convey("Should give up when the minimum is unreachable", func() {
			src := rand.New(rand.NewSource(1))
			_, err := RandomAbove(src, MaxBrightness+1, 50)
			So(err, ShouldNotBeNil)

			generr, ok := err.(*GenerationError)
			So(ok, ShouldBeTrue)
			So(generr.Minimum, ShouldEqual, MaxBrightness+1)
			So(generr.Attempts, ShouldEqual, 50)
		})
	})
}
