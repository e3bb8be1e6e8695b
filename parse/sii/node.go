package sii

// =========================
// AST Definitions
// =========================

type ValueKind string

// ValueKinds enumerates every node kind a decoded tree can hold.
var ValueKinds = struct {
	Section       ValueKind
	Array         ValueKind
	Number        ValueKind
	NumericString ValueKind
	HexFloat      ValueKind
	Bool          ValueKind
	String        ValueKind
}{
	Section:       "section",
	Array:         "array",
	Number:        "number",
	NumericString: "numeric_string",
	HexFloat:      "hex_float",
	Bool:          "bool",
	String:        "string",
}

// Node is one entry of a container: a *Section, an *Array or a *Value.
type Node interface {
	Kind() ValueKind
}

// Container is anything holding named entries: a *Document or a *Section.
type Container interface {
	Items() *Fields
}

// -------- Fields --------

// Fields is an insertion-ordered map from key to Node.
type Fields struct {
	keys  []string
	items map[string]Node
}

func (f *Fields) Len() int { return len(f.keys) }

// Keys returns the keys in insertion order. The slice must not be modified.
func (f *Fields) Keys() []string { return f.keys }

func (f *Fields) Get(key string) (Node, bool) {
	n, ok := f.items[key]
	return n, ok
}

// Set binds n under key. An existing key keeps its position.
func (f *Fields) Set(key string, n Node) {
	if f.items == nil {
		f.items = make(map[string]Node)
	}
	if _, ok := f.items[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.items[key] = n
}

func (f *Fields) Delete(key string) bool {
	if _, ok := f.items[key]; !ok {
		return false
	}
	delete(f.items, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	return true
}

// Each calls fn for every entry in order until fn returns false.
func (f *Fields) Each(fn func(key string, n Node) bool) {
	for _, k := range f.keys {
		if !fn(k, f.items[k]) {
			return
		}
	}
}

// -------- Document --------

// Document is the root of a decoded file.
type Document struct {
	Fields
}

func NewDocument() *Document { return &Document{} }

func (d *Document) Items() *Fields { return &d.Fields }

// Sections returns the top-level sections in document order.
func (d *Document) Sections() []*Section {
	var out []*Section
	d.Each(func(_ string, n Node) bool {
		if s, ok := n.(*Section); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// Section returns the section bound under name, if any.
func (d *Document) Section(name string) (*Section, bool) {
	n, ok := d.Get(name)
	if !ok {
		return nil, false
	}
	s, ok := n.(*Section)
	return s, ok
}

// -------- Section --------

type Section struct {
	typeTag string
	Fields
}

func NewSection(typeTag string) *Section {
	return &Section{typeTag: typeTag}
}

func (*Section) Kind() ValueKind { return ValueKinds.Section }

func (s *Section) TypeTag() string { return s.typeTag }

func (s *Section) Items() *Fields { return &s.Fields }

// Value returns the scalar bound under key, if key holds one.
func (s *Section) Value(key string) (*Value, bool) {
	n, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	v, ok := n.(*Value)
	return v, ok
}

// Array returns the array bound under key, if key holds one.
func (s *Section) Array(key string) (*Array, bool) {
	n, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	a, ok := n.(*Array)
	return a, ok
}

// -------- Array --------

// Array is a sparse, index-addressed list of values. A nil element is a hole.
// Declared holds the `key: <count>` line read alongside the indexed entries.
// It is never checked against len(Elems). Decode leaves it nil when the line
// is a Number equal to the length, so a nil Declared and a matching count
// decode to the same tree.
//
// Only *Value elements are encoded. Other nodes stored with SetAt are
// skipped by the encoder but still counted in the header.
type Array struct {
	Declared *Value
	Elems    []Node
}

func (*Array) Kind() ValueKind { return ValueKinds.Array }

func (a *Array) Len() int { return len(a.Elems) }

// Count is the header the encoder writes: Declared, or the length.
func (a *Array) Count() *Value {
	if a.Declared != nil {
		return a.Declared
	}
	return Number(int64(len(a.Elems)))
}

// At returns the element at i, or nil for holes and out-of-range indices.
func (a *Array) At(i int) Node {
	if i < 0 || i >= len(a.Elems) {
		return nil
	}
	return a.Elems[i]
}

// SetAt stores n at index i, growing the array with holes when needed.
// The encoder writes n only if it is a *Value.
func (a *Array) SetAt(i int, n Node) {
	if i >= len(a.Elems) {
		grown := make([]Node, i+1)
		copy(grown, a.Elems)
		a.Elems = grown
	}
	a.Elems[i] = n
}

// -------- Value --------

type Value struct {
	Type ValueKind
	V    any
}

func (v *Value) Kind() ValueKind { return v.Type }
