package keyboard

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVocabulary(t *testing.T) {
	Convey("Vocabulary", t, func() {
		keys := Vocabulary()

		Convey("Should cover every device slot exactly once", func() {
			So(len(keys), ShouldEqual, Count())

			seen := make(map[Key]bool)
			for _, k := range keys {
				So(k, ShouldNotBeEmpty)
				So(seen[k], ShouldBeFalse)
				seen[k] = true
			}
		})

		Convey("Should start at esc and end with the navigation cluster", func() {
			So(keys[0], ShouldEqual, Key("esc"))
			So(keys[len(keys)-1], ShouldEqual, Key("pgdn"))
		})
	})
}

func TestSlot(t *testing.T) {
	Convey("Slot", t, func() {
		Convey("Should report positions in declaration order", func() {
			i, ok := Slot("esc")
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 0)

			j, ok := Slot("f1")
			So(ok, ShouldBeTrue)
			So(j, ShouldEqual, 1)
		})

		Convey("Should reject unknown keys", func() {
			_, ok := Slot("numpad5")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		k, ok := Lookup("smartset")
		So(ok, ShouldBeTrue)
		So(k, ShouldEqual, Key("smartset"))

		_, ok = Lookup("space")
		So(ok, ShouldBeFalse)
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		So(Suggest("escape"), ShouldEqual, Key("esc"))
		So(Suggest("entr"), ShouldEqual, Key("enter"))
		So(Suggest("lshft"), ShouldEqual, Key("lshift"))
	})
}
