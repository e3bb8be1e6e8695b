package sii

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/smartystreets/goconvey/convey"
)

func treeDiff(want, got *Document) string {
	return cmp.Diff(want, got,
		cmp.AllowUnexported(Fields{}, Section{}),
		cmpopts.EquateEmpty())
}

func TestEncode(t *testing.T) {
	convey.Convey("canonical layout", t, func() {
		doc := NewDocument()
		eco := NewSection("economy")
		eco.Set("game_time", Number(42))
		eco.Set("fuel", HexFloat("&3dcccccd"))
		eco.Set("ratio", NumericString("3.50"))
		eco.Set("id", NumericString("12345678901234567890"))
		eco.Set("on", Bool(true))
		eco.Set("name", String(`"Nice"`))
		eco.Set("list", &Array{Elems: []Node{String("a"), nil, String("c")}})
		inner := NewSection("player")
		inner.Set("hp", Number(-3))
		eco.Set("_nameless.1", inner)
		doc.Set("_nameless.0", eco)

		want := "SiiNunit\n{\n" +
			"\teconomy : _nameless.0 {\n" +
			"\t\tgame_time: 42\n" +
			"\t\tfuel: &3dcccccd\n" +
			"\t\tratio: 3.50\n" +
			"\t\tid: 12345678901234567890\n" +
			"\t\ton: true\n" +
			"\t\tname: \"Nice\"\n" +
			"\t\tlist: 3\n" +
			"\t\tlist[0]: a\n" +
			"\t\tlist[2]: c\n" +
			"\t\tplayer : _nameless.1 {\n" +
			"\t\t\thp: -3\n" +
			"\t\t}\n" +
			"\t}\n" +
			"}\n"
		convey.So(Encode(doc), convey.ShouldEqual, want)
	})

	convey.Convey("the declared count is written verbatim", t, func() {
		doc := NewDocument()
		s := NewSection("company")
		s.Set("job_offer", &Array{Declared: Number(7), Elems: []Node{String("job.a")}})
		doc.Set("c", s)
		out := Encode(doc)
		convey.So(out, convey.ShouldContainSubstring, "\t\tjob_offer: 7\n\t\tjob_offer[0]: job.a\n")
	})

	convey.Convey("array elements that are not values are skipped", t, func() {
		doc := NewDocument()
		s := NewSection("company")
		arr := &Array{}
		arr.SetAt(0, String("job.a"))
		arr.SetAt(1, NewSection("job"))
		s.Set("job_offer", arr)
		doc.Set("c", s)
		out := Encode(doc)
		convey.So(out, convey.ShouldContainSubstring, "\t\tjob_offer: 2\n\t\tjob_offer[0]: job.a\n\t}\n")
		convey.So(out, convey.ShouldNotContainSubstring, "job_offer[1]")
	})

	convey.Convey("root entries that are not sections are skipped", t, func() {
		doc := NewDocument()
		doc.Set("stray", Number(1))
		doc.Set("s", NewSection("t"))
		convey.So(Encode(doc), convey.ShouldEqual, "SiiNunit\n{\n\tt : s {\n\t}\n}\n")
	})

	convey.Convey("an empty document is just the preamble block", t, func() {
		convey.So(Encode(NewDocument()), convey.ShouldEqual, "SiiNunit\n{\n}\n")
	})

	convey.Convey("booleans decode in any case and encode lowercase", t, func() {
		out := Encode(Decode("s : n {\n a: True\n b: FALSE\n}\n"))
		convey.So(out, convey.ShouldContainSubstring, "\t\ta: true\n\t\tb: false\n")
	})

	convey.Convey("hex floats survive byte for byte", t, func() {
		out := Encode(Decode("s : n {\n f: &BF800000\n}\n"))
		convey.So(out, convey.ShouldContainSubstring, "\t\tf: &BF800000\n")
	})
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncoder(t *testing.T) {
	convey.Convey("the stream encoder matches Encode", t, func() {
		doc := Decode(economySample)
		var buf bytes.Buffer
		err := NewEncoder(&buf).Encode(doc)
		convey.So(err, convey.ShouldBeNil)
		convey.So(buf.String(), convey.ShouldEqual, Encode(doc))
	})

	convey.Convey("write errors surface on flush", t, func() {
		err := NewEncoder(failWriter{}).Encode(Decode(economySample))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldEqual, "disk full")
	})

	convey.Convey("colors wrap tokens without changing the text", t, func() {
		colors := &Colors{
			Default: colorDefault,
			Map: map[Colorable]func(string, ...any) string{
				{Kind: ValueKinds.Section, Attr: TypeColor}: func(s string, _ ...any) string { return "<" + s + ">" },
				{Kind: ValueKinds.Number, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
			},
		}
		doc := Decode("s : n {\n k: 5\n}\n")
		out := Encode(doc, EncodeColors(colors))
		convey.So(out, convey.ShouldContainSubstring, "\t<s> : n {\n")
		convey.So(out, convey.ShouldContainSubstring, "\t\tk: #5\n")
	})

	convey.Convey("default colors are complete for every scalar kind", t, func() {
		colors := NewColors()
		for _, k := range scalarKinds() {
			_, ok := colors.Map[Colorable{Kind: k, Attr: ValueColor}]
			convey.So(ok, convey.ShouldBeTrue)
		}
		convey.So(colors.Get(ValueKinds.Array, NameColor)("x"), convey.ShouldEqual, "x")
	})
}

func TestRoundTrip(t *testing.T) {
	convey.Convey("decode after encode gives back the same tree", t, func() {
		doc := Decode(economySample)
		again := Decode(Encode(doc))
		convey.So(treeDiff(doc, again), convey.ShouldEqual, "")
	})

	convey.Convey("holes and nested sections survive", t, func() {
		src := `SiiNunit
{
outer : o {
 list: 5
 list[1]: b
 list[4]: e
 inner : i.j {
  deep : k {
   v: 1.25
  }
 }
 after: &0
}
}
`
		doc := Decode(src)
		again := Decode(Encode(doc))
		convey.So(treeDiff(doc, again), convey.ShouldEqual, "")
		arr, _ := mustSection(again, "o").Array("list")
		convey.So(arr.At(0), convey.ShouldBeNil)
		convey.So(arr.At(4).(*Value).Text(), convey.ShouldEqual, "e")
	})

	convey.Convey("arrays without a count line survive", t, func() {
		src := `SiiNunit
{
s : n {
 list[0]: a
 list[2]: c
 list[1]: b
}
}
`
		doc := Decode(src)
		again := Decode(Encode(doc))
		convey.So(treeDiff(doc, again), convey.ShouldEqual, "")
		arr, _ := mustSection(again, "n").Array("list")
		convey.So(arr.Declared, convey.ShouldBeNil)
	})

	convey.Convey("arrays built in code survive", t, func() {
		doc := NewDocument()
		s := NewSection("company")
		s.Set("job_offer", &Array{Elems: []Node{String("job.a")}})
		s.Set("cargo", &Array{Declared: String("many"), Elems: []Node{nil, String("apples")}})
		doc.Set("c", s)
		convey.So(treeDiff(doc, Decode(Encode(doc))), convey.ShouldEqual, "")
	})

	convey.Convey("encoding is stable", t, func() {
		once := Encode(Decode(economySample))
		twice := Encode(Decode(once))
		convey.So(twice, convey.ShouldEqual, once)
		convey.So(strings.Count(once, "\n"), convey.ShouldEqual, 19)
	})
}
