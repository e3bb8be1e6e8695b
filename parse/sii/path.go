package sii

import "strings"

// Path addresses a node by the keys leading to it from a root container.
// Paths are resolved on use, so they stay valid across edits that don't
// touch the keys they name.
type Path []string

// Child returns a new path extended by key. p is not modified.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Parent returns the path without its last key.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Key returns the last key, or "" for the root path.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) String() string { return "/" + strings.Join(p, "/") }

// Lookup resolves p from root. The empty path is not a node and reports
// false.
func Lookup(root Container, p Path) (Node, bool) {
	parent, ok := container(root, p.Parent())
	if !ok || len(p) == 0 {
		return nil, false
	}
	return parent.Items().Get(p.Key())
}

// Replace rebinds the node at p, keeping its position. It reports false
// when p does not resolve to an existing entry.
func Replace(root Container, p Path, n Node) bool {
	parent, ok := container(root, p.Parent())
	if !ok || len(p) == 0 {
		return false
	}
	f := parent.Items()
	if _, ok := f.Get(p.Key()); !ok {
		return false
	}
	f.Set(p.Key(), n)
	return true
}

// Remove deletes the entry at p.
func Remove(root Container, p Path) bool {
	parent, ok := container(root, p.Parent())
	if !ok || len(p) == 0 {
		return false
	}
	return parent.Items().Delete(p.Key())
}

func container(root Container, p Path) (Container, bool) {
	cur := root
	for _, key := range p {
		n, ok := cur.Items().Get(key)
		if !ok {
			return nil, false
		}
		s, ok := n.(*Section)
		if !ok {
			return nil, false
		}
		cur = s
	}
	return cur, true
}
