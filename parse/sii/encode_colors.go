package sii

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	NameColor
	KeyColor
	ValueColor
	BraceColor
)

type Colorable struct {
	Kind ValueKind
	Attr ColorAttr
}

// Colors maps a (kind, attribute) pair to a formatting function.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range scalarKinds() {
		colors.Map[Colorable{Kind: k, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ValueKinds.Section, Attr: TypeColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Kind: ValueKinds.Section, Attr: NameColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ValueKinds.Section, Attr: BraceColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ValueKinds.Array, Attr: KeyColor}] = color.RGB(196, 128, 128).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Kind = ValueKinds.Number
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ValueKinds.NumericString
	colors.Map[able] = color.RGB(88, 158, 236).SprintfFunc()
	able.Kind = ValueKinds.HexFloat
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = ValueKinds.Bool
	colors.Map[able] = color.CyanString
	able.Kind = ValueKinds.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ValueKind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ValueKind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func scalarKinds() []ValueKind {
	return []ValueKind{
		ValueKinds.Number,
		ValueKinds.NumericString,
		ValueKinds.HexFloat,
		ValueKinds.Bool,
		ValueKinds.String,
	}
}
