package sii

import (
	"strconv"
	"strings"
)

// Preamble is the first line of every SII text document.
const Preamble = "SiiNunit"

type tokenType uint8

const (
	tokIllegal tokenType = iota
	tokPreamble
	tokOpen
	tokClose
	tokField
	tokIndexed
)

func (t tokenType) String() string {
	switch t {
	case tokPreamble:
		return "preamble"
	case tokOpen:
		return "open"
	case tokClose:
		return "close"
	case tokField:
		return "field"
	case tokIndexed:
		return "indexed"
	default:
		return "illegal"
	}
}

// token is one classified logical line.
type token struct {
	Type   tokenType
	LineNo int

	// tokOpen
	TypeTag string
	Name    string

	// tokField, tokIndexed
	Key   string
	Index int
	Raw   string

	// tokIllegal
	Reason string
}

type line struct {
	No   int
	Text string
}

// splitLines drops CRs, trims every line, and removes blank and // comment
// lines. Line numbers are 1-based positions in the original text.
func splitLines(text string) []line {
	text = strings.ReplaceAll(text, "\r", "")
	raw := strings.Split(text, "\n")
	out := make([]line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		out = append(out, line{No: i + 1, Text: l})
	}
	return out
}

func lexLine(l line) token {
	s := l.Text
	switch {
	case strings.HasPrefix(s, Preamble):
		return token{Type: tokPreamble, LineNo: l.No}
	case s == "}":
		return token{Type: tokClose, LineNo: l.No}
	case strings.HasSuffix(s, "{"):
		return lexOpen(l)
	default:
		return lexField(l)
	}
}

// lexOpen reads `<type> : <name> {`. A name never contains ':', so the
// last colon separates the two.
func lexOpen(l line) token {
	body := strings.TrimSpace(l.Text[:len(l.Text)-1])
	sep := strings.LastIndexByte(body, ':')
	if sep < 0 {
		return illegal(l, "brace without section header")
	}
	typeTag := strings.TrimSpace(body[:sep])
	name := strings.TrimSpace(body[sep+1:])
	if !validTypeTag(typeTag) {
		return illegal(l, "invalid section type")
	}
	if !validName(name) {
		return illegal(l, "invalid section name")
	}
	return token{Type: tokOpen, LineNo: l.No, TypeTag: typeTag, Name: name}
}

func lexField(l line) token {
	idx := strings.IndexByte(l.Text, ':')
	if idx < 0 {
		return illegal(l, "missing colon")
	}
	key := strings.TrimSpace(l.Text[:idx])
	raw := strings.TrimSpace(l.Text[idx+1:])
	if key == "" {
		return illegal(l, "empty key")
	}
	if name, index, ok := splitIndexedKey(key); ok {
		return token{Type: tokIndexed, LineNo: l.No, Key: name, Index: index, Raw: raw}
	}
	return token{Type: tokField, LineNo: l.No, Key: key, Raw: raw}
}

// splitIndexedKey matches `<name>[<digits>]`.
func splitIndexedKey(key string) (string, int, bool) {
	if !strings.HasSuffix(key, "]") {
		return "", 0, false
	}
	lb := strings.LastIndexByte(key, '[')
	if lb <= 0 {
		return "", 0, false
	}
	digits := key[lb+1 : len(key)-1]
	if digits == "" {
		return "", 0, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return "", 0, false
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	name := strings.TrimSpace(key[:lb])
	if name == "" {
		return "", 0, false
	}
	return name, index, true
}

func illegal(l line, reason string) token {
	return token{Type: tokIllegal, LineNo: l.No, Reason: reason}
}

func validTypeTag(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) && s[i] != ':' {
			return false
		}
	}
	return true
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isWordChar(c) && c != '.' && c != '-' {
			return false
		}
	}
	return true
}
