package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/dzjyyds666/siq/parse/sii"
)

type ExportFormat string

var exportFormats = struct {
	YAML ExportFormat
	JSON ExportFormat
}{
	YAML: "yaml",
	JSON: "json",
}

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case exportFormats.YAML, exportFormats.JSON:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want yaml or json)", s)
}

// CountSuffix names the sibling entry that carries an array's count header.
const CountSuffix = "__count"

// Export writes doc in the given format. Document and field order is kept.
func Export(w io.Writer, doc *sii.Document, format ExportFormat) error {
	tree := orderedDocument(doc)
	switch format {
	case exportFormats.JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(tree)
	case exportFormats.YAML:
		b, err := yaml.Marshal(tree.mapSlice())
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// =========================
// Ordered projection
// =========================

type orderedItem struct {
	Key   string
	Value any
}

// orderedMap keeps insertion order through both encoders.
type orderedMap []orderedItem

func orderedDocument(doc *sii.Document) orderedMap {
	return orderedFields(doc.Items(), "")
}

func orderedFields(f *sii.Fields, typeTag string) orderedMap {
	out := make(orderedMap, 0, f.Len()+1)
	if typeTag != "" {
		out = append(out, orderedItem{Key: sii.TypeKey, Value: typeTag})
	}
	f.Each(func(key string, n sii.Node) bool {
		if arr, ok := n.(*sii.Array); ok {
			out = append(out, orderedItem{Key: key + CountSuffix, Value: sii.ToUntyped(arr.Count())})
		}
		out = append(out, orderedItem{Key: key, Value: orderedNode(n)})
		return true
	})
	return out
}

func orderedNode(n sii.Node) any {
	switch v := n.(type) {
	case *sii.Section:
		return orderedFields(v.Items(), v.TypeTag())
	case *sii.Array:
		out := make([]any, v.Len())
		for i := range out {
			if e := v.At(i); e != nil {
				out[i] = orderedNode(e)
			}
		}
		return out
	default:
		return sii.ToUntyped(n)
	}
}

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalJSON(it.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalJSON(it.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping, so hex-float
// literals keep their '&'.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (m orderedMap) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(m))
	for _, it := range m {
		out = append(out, yaml.MapItem{Key: it.Key, Value: toMapSlice(it.Value)})
	}
	return out
}

func toMapSlice(v any) any {
	switch x := v.(type) {
	case orderedMap:
		return x.mapSlice()
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = toMapSlice(x[i])
		}
		return out
	default:
		return v
	}
}
