package sii

import (
	"io"
	"log/slog"
)

// DefaultMaxArrayIndex bounds the index accepted in `key[n]` lines.
const DefaultMaxArrayIndex = 1 << 20

type decodeOptions struct {
	log           *slog.Logger
	maxArrayIndex int
}

type DecodeOption func(*decodeOptions)

// WithLogger reports dropped lines to l at debug level.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(o *decodeOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// MaxArrayIndex drops indexed entries whose index is above n.
func MaxArrayIndex(n int) DecodeOption {
	return func(o *decodeOptions) {
		if n >= 0 {
			o.maxArrayIndex = n
		}
	}
}

// =========================
// Public API
// =========================

// Decode parses SII text. It never fails: lines it cannot classify are
// dropped and an unmatched `}` returns to the document root.
func Decode(text string, opts ...DecodeOption) *Document {
	o := decodeOptions{
		log:           slog.New(slog.DiscardHandler),
		maxArrayIndex: DefaultMaxArrayIndex,
	}
	for _, opt := range opts {
		opt(&o)
	}
	p := newParser(&o)
	for _, l := range splitLines(text) {
		p.consume(lexLine(l))
	}
	settleCounts(p.root)
	return p.root
}

// Parse reads all of r and decodes it. The only error is a read error.
func Parse(r io.Reader, opts ...DecodeOption) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data), opts...), nil
}

// =========================
// Parser Implementation
// =========================

type parseState uint8

const (
	atRoot parseState = iota
	inSection
)

func (s parseState) String() string {
	if s == atRoot {
		return "root"
	}
	return "section"
}

// frame is one open scope. The stack owns its frames; nothing outside a
// single Decode call sees them.
type frame struct {
	c    Container
	path Path
}

type parser struct {
	opts  *decodeOptions
	root  *Document
	stack []frame
	cur   frame
	state parseState
}

func newParser(o *decodeOptions) *parser {
	root := NewDocument()
	return &parser{
		opts:  o,
		root:  root,
		cur:   frame{c: root},
		state: atRoot,
	}
}

func (p *parser) consume(t token) {
	switch t.Type {
	case tokPreamble:
	case tokOpen:
		p.open(t)
	case tokClose:
		p.close(t)
	case tokField:
		p.field(t)
	case tokIndexed:
		p.indexed(t)
	default:
		p.drop(t, t.Reason)
	}
}

func (p *parser) open(t token) {
	s := NewSection(t.TypeTag)
	p.cur.c.Items().Set(t.Name, s)
	p.stack = append(p.stack, p.cur)
	p.cur = frame{c: s, path: p.cur.path.Child(t.Name)}
	p.state = inSection
}

func (p *parser) close(t token) {
	if len(p.stack) == 0 {
		p.opts.log.Debug("sii: unmatched close brace", "line", t.LineNo)
		p.cur = frame{c: p.root}
		p.state = atRoot
		return
	}
	p.cur = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) == 0 {
		p.state = atRoot
	}
}

func (p *parser) field(t token) {
	f := p.cur.c.Items()
	v := ParseValue(t.Raw)
	if n, ok := f.Get(t.Key); ok {
		if arr, ok := n.(*Array); ok {
			arr.Declared = v
			return
		}
	}
	f.Set(t.Key, v)
}

func (p *parser) indexed(t token) {
	if t.Index > p.opts.maxArrayIndex {
		p.drop(t, "array index out of range")
		return
	}
	f := p.cur.c.Items()
	v := ParseValue(t.Raw)
	var arr *Array
	switch n, _ := f.Get(t.Key); x := n.(type) {
	case *Array:
		arr = x
	case *Value:
		arr = &Array{Declared: x}
		f.Set(t.Key, arr)
	default:
		arr = &Array{}
		f.Set(t.Key, arr)
	}
	arr.SetAt(t.Index, v)
}

// settleCounts clears count headers that only repeat the array length.
func settleCounts(c Container) {
	c.Items().Each(func(_ string, n Node) bool {
		switch x := n.(type) {
		case *Section:
			settleCounts(x)
		case *Array:
			if x.Declared == nil {
				break
			}
			if i, ok := x.Declared.Int(); ok && i == int64(len(x.Elems)) {
				x.Declared = nil
			}
		}
		return true
	})
}

func (p *parser) drop(t token, reason string) {
	p.opts.log.Debug("sii: dropped line",
		"line", t.LineNo,
		"reason", reason,
		"state", p.state.String(),
		"path", p.cur.path.String())
}
