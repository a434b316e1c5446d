package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when serialized deck data is malformed or
// does not have the shape of a disease -> symptom list mapping.
var ErrInvalidDocument = errors.New("invalid deck document")

// deckSchema describes the serialized form: an object of string arrays.
const deckSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string"}
	}
}`

const deckSchemaURL = "schema://deck.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(deckSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(deckSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add deck schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(deckSchemaURL)
	})
	return compiledSchema, compileErr
}

// MarshalJSON writes the deck as a JSON object whose key order matches the
// deck's insertion order.
func (d *Deck) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, symptoms := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		k, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshal disease %q: %w", name, err)
		}
		if symptoms == nil {
			symptoms = []string{}
		}
		v, err := json.Marshal(symptoms)
		if err != nil {
			return nil, fmt.Errorf("marshal symptoms of %q: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseJSON decodes a deck serialized by MarshalJSON, keeping document order.
// A repeated key keeps its first position and its last value. Entries with an
// empty disease name are dropped.
func ParseJSON(data []byte) (*Deck, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}

	sch, err := schema()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	d := New()
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if key.String() == "" {
			return true
		}
		var symptoms []string
		for _, s := range value.Array() {
			symptoms = append(symptoms, s.String())
		}
		d.Set(key.String(), symptoms)
		return true
	})
	return d, nil
}

// EncodeYAML renders the deck as a YAML mapping in insertion order.
func (d *Deck) EncodeYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for name, symptoms := range d.All() {
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range symptoms {
			list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			list,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseYAML decodes a YAML mapping of disease -> symptom sequence in document
// order. An empty document yields an empty deck. Entries with an empty
// disease name are dropped.
func ParseYAML(data []byte) (*Deck, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	d := New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return d, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrInvalidDocument)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: disease name is not a scalar", ErrInvalidDocument, key.Line)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: line %d: symptoms of %q are not a list", ErrInvalidDocument, value.Line, key.Value)
		}
		symptoms := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: symptom is not a scalar", ErrInvalidDocument, item.Line)
			}
			symptoms = append(symptoms, item.Value)
		}
		if key.Value == "" {
			continue
		}
		d.Set(key.Value, symptoms)
	}
	return d, nil
}
