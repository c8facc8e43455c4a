package profile

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/monkeypaint-cli/monkeypaint/keyboard"
	"github.com/monkeypaint-cli/monkeypaint/palette"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
)

func uniformMap(c rgb.Color) palette.KeyColorMap {
	m := make(palette.KeyColorMap, keyboard.Count())
	for _, k := range keyboard.Vocabulary() {
		m[k] = c
	}
	return m
}

func TestEncode(t *testing.T) {
	Convey("Encode", t, func() {
		main := uniformMap(rgb.Color{R: 255, G: 64})
		fn := uniformMap(rgb.Color{B: 128})
		encoded := Encode(main, fn)

		Convey("Emits one line per key per layer", func() {
			lines := strings.Split(strings.TrimSuffix(string(encoded), "\r\n"), "\r\n")
			So(len(lines), ShouldEqual, keyboard.Count()*2)
		})

		Convey("Starts with the first slot on the main layer", func() {
			So(string(encoded), ShouldStartWith, "[esc]>[255][64][0]\r\n")
		})

		Convey("Prefixes fn layer lines after the main layer", func() {
			So(string(encoded), ShouldContainSubstring, "\r\n[fn esc]>[0][0][128]\r\n")
		})

		Convey("Terminates every line with CRLF, including the last", func() {
			So(string(encoded), ShouldEndWith, "\r\n")
			So(strings.Contains(strings.ReplaceAll(string(encoded), "\r\n", ""), "\n"), ShouldBeFalse)
		})

		Convey("Is byte-identical across runs", func() {
			So(bytes.Equal(encoded, Encode(main, fn)), ShouldBeTrue)
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Round-trips an encoded profile", func() {
			main := uniformMap(rgb.Color{R: 1, G: 2, B: 3})
			fn := uniformMap(rgb.Color{R: 4, G: 5, B: 6})

			gotMain, gotFn, err := Decode(Encode(main, fn))
			So(err, ShouldBeNil)
			So(gotMain, ShouldResemble, main)
			So(gotFn, ShouldResemble, fn)
		})

		Convey("Keeps the last occurrence of a repeated key", func() {
			data := []byte("[esc]>[1][1][1]\r\n[esc]>[2][2][2]\r\n")
			main, _, err := Decode(data)
			So(err, ShouldBeNil)
			So(main["esc"], ShouldResemble, rgb.Color{R: 2, G: 2, B: 2})
		})

		Convey("Ignores blank lines", func() {
			data := []byte("[esc]>[1][1][1]\r\n\r\n[fn esc]>[2][2][2]\r\n")
			main, fn, err := Decode(data)
			So(err, ShouldBeNil)
			So(len(main), ShouldEqual, 1)
			So(len(fn), ShouldEqual, 1)
		})

		Convey("Rejects malformed lines", func() {
			_, _, err := Decode([]byte("esc = 255 255 255\r\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unknown keys", func() {
			_, _, err := Decode([]byte("[numpad5]>[1][1][1]\r\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects channel values above 255", func() {
			_, _, err := Decode([]byte("[esc]>[256][0][0]\r\n"))
			So(err, ShouldNotBeNil)
		})
	})
}
