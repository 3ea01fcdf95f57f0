package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// DecodeSnapshot reads a snapshot written in the given format and vocabulary.
// The movement root must be a list and every record needs a string id.
// Any other collection that is absent or not a list comes back empty.
func DecodeSnapshot(r io.Reader, format Format, vocab Vocabulary) (*entities.Dataset, error) {
	doc, err := decodeDocument(r, format)
	if err != nil {
		return nil, err
	}

	root, ok := renameKeys(doc, vocab.toCanonical()).(map[string]any)
	if !ok {
		return nil, &ImportError{Message: "snapshot must be an object"}
	}
	for _, c := range entities.AllCollections {
		if v, present := root[string(c)]; present {
			if _, isList := v.([]any); !isList {
				delete(root, string(c))
			}
		}
	}

	canonical, err := marshal(root)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := validateSnapshot(canonical, vocab); err != nil {
		return nil, err
	}

	var ds entities.Dataset
	if err := json.Unmarshal(canonical, &ds); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return ds.Normalize(), nil
}

// EncodeSnapshot writes ds in the given format and vocabulary.
func EncodeSnapshot(w io.Writer, ds *entities.Dataset, format Format, vocab Vocabulary) error {
	if ds == nil {
		ds = entities.NewDataset()
	}
	return Encode(w, ds, format, vocab)
}

// Encode writes any JSON-shaped value in the given format and vocabulary,
// keeping the field order of its JSON encoding.
func Encode(w io.Writer, v any, format Format, vocab Vocabulary) error {
	raw, err := marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	keys := vocab.toExternal()
	if format == FormatJSON && keys == nil {
		return writeIndented(w, raw)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("reading encoded value: %w", err)
	}
	renameNodeKeys(&doc, keys)

	switch format {
	case FormatJSON:
		var compact bytes.Buffer
		if err := writeNodeJSON(&compact, &doc); err != nil {
			return err
		}
		return writeIndented(w, compact.Bytes())
	case FormatYAML:
		resetStyle(&doc)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("writing YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func decodeDocument(r io.Reader, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return doc, nil
}

// marshal encodes v as compact JSON without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeIndented(w io.Writer, compact []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return fmt.Errorf("indenting JSON: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// writeNodeJSON renders a document parsed from JSON back to compact JSON.
// Non-string scalars are copied verbatim.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" {
			return writeJSONString(buf, n.Value)
		}
		buf.WriteString(n.Value)
	default:
		return fmt.Errorf("unexpected node kind %d at line %d", n.Kind, n.Line)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := marshal(s)
	if err != nil {
		return fmt.Errorf("encoding string: %w", err)
	}
	buf.Write(encoded)
	return nil
}

// resetStyle drops the flow and quoting styles inherited from JSON input.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}
