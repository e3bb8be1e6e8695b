package sii

// TypeKey is the key ToUntyped uses for a section's type tag.
const TypeKey = "__type"

// ToUntyped converts n into plain Go values: sections become
// map[string]any carrying TypeKey, arrays []any with nil holes, and
// scalars their V.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			if v.Elems[i] != nil {
				out[i] = ToUntyped(v.Elems[i])
			}
		}
		return out
	case *Section:
		m := fieldsToUntyped(&v.Fields)
		m[TypeKey] = v.TypeTag()
		return m
	default:
		return nil
	}
}

// DocumentToUntyped converts every entry of doc, sections and root
// scalars alike.
func DocumentToUntyped(doc *Document) map[string]any {
	return fieldsToUntyped(&doc.Fields)
}

func fieldsToUntyped(f *Fields) map[string]any {
	m := make(map[string]any, f.Len()+1)
	f.Each(func(k string, child Node) bool {
		m[k] = ToUntyped(child)
		return true
	})
	return m
}
