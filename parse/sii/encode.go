package sii

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type encodeOptions struct {
	colors *Colors
}

type EncodeOption func(*encodeOptions)

// EncodeColors highlights the output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encodeOptions) { o.colors = c }
}

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []EncodeOption
}

func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes doc. Top-level entries that are not sections are skipped.
func (e *Encoder) Encode(doc *Document) error {
	bw := bufio.NewWriter(e.w)
	newEncodeState(bw, e.opts).document(doc)
	return bw.Flush()
}

// Encode returns the text form of doc.
func Encode(doc *Document, opts ...EncodeOption) string {
	var b strings.Builder
	newEncodeState(&b, opts).document(doc)
	return b.String()
}

type stringWriter interface {
	WriteString(string) (int, error)
}

type encodeState struct {
	w      stringWriter
	colors *Colors
}

func newEncodeState(w stringWriter, opts []EncodeOption) *encodeState {
	o := encodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.colors == nil {
		o.colors = &Colors{Default: colorDefault}
	}
	return &encodeState{w: w, colors: o.colors}
}

func (e *encodeState) document(doc *Document) {
	e.w.WriteString(Preamble + "\n{\n")
	doc.Each(func(name string, n Node) bool {
		if s, ok := n.(*Section); ok {
			e.section(name, s, 1)
		}
		return true
	})
	e.w.WriteString("}\n")
}

func (e *encodeState) section(name string, s *Section, level int) {
	c := e.colors
	e.indent(level)
	e.w.WriteString(c.Color(ValueKinds.Section, TypeColor, s.TypeTag()))
	e.w.WriteString(" : ")
	e.w.WriteString(c.Color(ValueKinds.Section, NameColor, name))
	e.w.WriteString(" " + c.Color(ValueKinds.Section, BraceColor, "{") + "\n")

	s.Each(func(key string, n Node) bool {
		switch x := n.(type) {
		case *Section:
			e.section(key, x, level+1)
		case *Array:
			e.array(key, x, level+1)
		case *Value:
			e.field(key, x, level+1)
		}
		return true
	})

	e.indent(level)
	e.w.WriteString(c.Color(ValueKinds.Section, BraceColor, "}") + "\n")
}

func (e *encodeState) array(key string, a *Array, level int) {
	count := a.Count()
	e.indent(level)
	e.w.WriteString(e.colors.Color(ValueKinds.Array, KeyColor, key) + ": ")
	e.w.WriteString(e.colors.Color(count.Type, ValueColor, count.Text()) + "\n")
	for i, n := range a.Elems {
		v, ok := n.(*Value)
		if !ok {
			continue
		}
		e.field(key+"["+strconv.Itoa(i)+"]", v, level)
	}
}

func (e *encodeState) field(key string, v *Value, level int) {
	e.indent(level)
	e.w.WriteString(e.colors.Color(v.Type, KeyColor, key) + ": ")
	e.w.WriteString(e.colors.Color(v.Type, ValueColor, v.Text()) + "\n")
}

func (e *encodeState) indent(level int) {
	e.w.WriteString(strings.Repeat("\t", level))
}
