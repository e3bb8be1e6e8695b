package sii

// Match is one section found by FindAll. Parent and Key are the binding the
// section was found under; Path addresses it from the search root.
type Match struct {
	Parent  Container
	Key     string
	Section *Section
	Path    Path
}

// FindAll returns every section tagged typeTag under root, depth-first in
// document order. A section is reported before anything nested in it.
func FindAll(root Container, typeTag string) []Match {
	var out []Match
	walk(root, nil, func(m Match) bool {
		if m.Section.TypeTag() == typeTag {
			out = append(out, m)
		}
		return true
	})
	return out
}

// FindFirst returns the first match in FindAll order.
func FindFirst(root Container, typeTag string) (Match, bool) {
	var (
		found Match
		ok    bool
	)
	walk(root, nil, func(m Match) bool {
		if m.Section.TypeTag() == typeTag {
			found, ok = m, true
			return false
		}
		return true
	})
	return found, ok
}

// Walk visits every section under root in pre-order until fn returns false.
func Walk(root Container, fn func(Match) bool) {
	walk(root, nil, fn)
}

func walk(c Container, at Path, fn func(Match) bool) bool {
	cont := true
	c.Items().Each(func(key string, n Node) bool {
		s, ok := n.(*Section)
		if !ok {
			return true
		}
		p := at.Child(key)
		if !fn(Match{Parent: c, Key: key, Section: s, Path: p}) {
			cont = false
			return false
		}
		cont = walk(s, p, fn)
		return cont
	})
	return cont
}
