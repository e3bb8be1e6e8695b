package pkg

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dzjyyds666/siq/parse/sii"
)

type DiffOp byte

const (
	DiffEqual  DiffOp = ' '
	DiffDelete DiffOp = '-'
	DiffInsert DiffOp = '+'
)

type DiffLine struct {
	Op   DiffOp
	Text string
}

// RoundTrip is the result of decoding a source and encoding it again,
// compared line by line after normalization.
type RoundTrip struct {
	Source  string
	Encoded string
	Lines   []DiffLine
}

// Changed reports whether any line was added or lost.
func (r *RoundTrip) Changed() bool {
	for _, l := range r.Lines {
		if l.Op != DiffEqual {
			return true
		}
	}
	return false
}

// Changes returns only the added and removed lines.
func (r *RoundTrip) Changes() []DiffLine {
	var out []DiffLine
	for _, l := range r.Lines {
		if l.Op != DiffEqual {
			out = append(out, l)
		}
	}
	return out
}

func CheckRoundTrip(src string, opts ...sii.DecodeOption) *RoundTrip {
	enc := sii.Encode(sii.Decode(src, opts...))
	return &RoundTrip{
		Source:  src,
		Encoded: enc,
		Lines:   diffLines(Normalize(src), Normalize(enc)),
	}
}

// Normalize trims every line and drops blank and comment lines, so texts
// that differ only in layout compare equal.
func Normalize(text string) string {
	var b strings.Builder
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func diffLines(a, b string) []DiffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return out
}
