// Package document implements the schema-driven state engine for a
// partially-filled typed JSON document: a tree of typed fields with stable
// dotted-path addressing, completion metrics and repeatable-list lifecycle.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldType enumerates the declared types a Field can carry.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldLongText FieldType = "long_text"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldDate     FieldType = "date"
	FieldYear     FieldType = "year"
	FieldChoice   FieldType = "choice"
	// FieldFixed marks a pre-filled constant. Fixed fields are excluded from
	// progress totals and never appear in missing-field reports.
	FieldFixed FieldType = "fixed"
)

// Node is the tagged variant making up a document tree. The variant is
// decided once, at decode time: an object carrying both "value" and
// "required" keys at its own level is a Field, any other object is a
// Section, an array is a List and a bare scalar is a Value.
type Node interface {
	node()
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Node
}

// Field is the atomic leaf: a settable value plus required/type metadata.
type Field struct {
	Value    any       `json:"value"`
	Required bool      `json:"required"`
	Type     FieldType `json:"type"`
	Options  []string  `json:"options,omitempty"`
}

// Section is a named, ordered mapping of keys to child nodes. Key order is
// preserved from the source template so traversal and rendering follow the
// document's natural order.
type Section struct {
	keys  []string
	nodes map[string]Node
}

// List is an ordered sequence of homogeneous item nodes, used for
// repeatable entities such as additional tenants or guarantors.
type List struct {
	Items []Node
}

// Value is a raw scalar that is not Field-shaped. It appears when a write
// replaces a non-Field node outright.
type Value struct {
	V any
}

func (*Field) node()   {}
func (*Section) node() {}
func (*List) node()    {}
func (*Value) node()   {}

// IsEmpty reports whether the field holds no usable value: nil, the empty
// string, or an empty array.
func (f *Field) IsEmpty() bool {
	switch v := f.Value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// emptyValue returns the type-appropriate unset sentinel: nil for boolean
// and number fields, the empty string otherwise.
func emptyValue(t FieldType) any {
	switch t {
	case FieldBoolean, FieldNumber:
		return nil
	default:
		return ""
	}
}

func (f *Field) Clone() Node {
	c := *f
	if f.Options != nil {
		c.Options = append([]string(nil), f.Options...)
	}
	return &c
}

func (s *Section) Clone() Node {
	c := NewSection()
	for _, k := range s.keys {
		c.Put(k, s.nodes[k].Clone())
	}
	return c
}

func (l *List) Clone() Node {
	c := &List{Items: make([]Node, len(l.Items))}
	for i, it := range l.Items {
		c.Items[i] = it.Clone()
	}
	return c
}

func (v *Value) Clone() Node {
	return &Value{V: v.V}
}

// NewSection returns an empty ordered section.
func NewSection() *Section {
	return &Section{nodes: make(map[string]Node)}
}

// Get returns the child stored under key.
func (s *Section) Get(key string) (Node, bool) {
	n, ok := s.nodes[key]
	return n, ok
}

// Put stores a child under key, appending the key to the order when new.
func (s *Section) Put(key string, n Node) {
	if _, exists := s.nodes[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.nodes[key] = n
}

// Keys returns the child keys in template order.
func (s *Section) Keys() []string {
	return s.keys
}

// Len returns the number of children.
func (s *Section) Len() int {
	return len(s.keys)
}

// emptyCopy deep-copies a node resetting every Field to its unset sentinel
// while preserving required/type/options. Used to stamp out new list items.
func emptyCopy(n Node) Node {
	switch t := n.(type) {
	case *Field:
		c := t.Clone().(*Field)
		c.Value = emptyValue(t.Type)
		return c
	case *Section:
		c := NewSection()
		for _, k := range t.keys {
			c.Put(k, emptyCopy(t.nodes[k]))
		}
		return c
	case *List:
		c := &List{Items: make([]Node, len(t.Items))}
		for i, it := range t.Items {
			c.Items[i] = emptyCopy(it)
		}
		return c
	default:
		return n.Clone()
	}
}

// DecodeTree parses a serialized document into its node tree. The top level
// must be an object (the category map).
func DecodeTree(data []byte) (*Section, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeNode(dec)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*Section)
	if !ok {
		return nil, fmt.Errorf("document root must be an object, got %T", n)
	}
	// Trailing garbage after the root value is a corrupt document.
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing data after document root")
	}
	return root, nil
}

// EncodeTree serializes a node tree back to JSON, preserving key order.
func EncodeTree(root *Section) ([]byte, error) {
	return json.Marshal(root)
}

func decodeNode(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// Scalar: string, json.Number, bool or nil.
		return &Value{V: tok}, nil
	}
}

// decodeObject reads object members in order, then classifies the object as
// a Field (has both "value" and "required") or a Section.
func decodeObject(dec *json.Decoder) (Node, error) {
	var order []string
	raw := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var msg json.RawMessage
		if err := dec.Decode(&msg); err != nil {
			return nil, fmt.Errorf("decoding value of %q: %w", key, err)
		}
		if _, dup := raw[key]; !dup {
			order = append(order, key)
		}
		raw[key] = msg
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}

	_, hasValue := raw["value"]
	_, hasRequired := raw["required"]
	if hasValue && hasRequired {
		return decodeField(raw)
	}

	sec := NewSection()
	for _, k := range order {
		sub := json.NewDecoder(bytes.NewReader(raw[k]))
		sub.UseNumber()
		child, err := decodeNode(sub)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		sec.Put(k, child)
	}
	return sec, nil
}

func decodeField(raw map[string]json.RawMessage) (Node, error) {
	f := &Field{}
	valDec := json.NewDecoder(bytes.NewReader(raw["value"]))
	valDec.UseNumber()
	var v any
	if err := valDec.Decode(&v); err != nil {
		return nil, fmt.Errorf("field value: %w", err)
	}
	f.Value = v
	if err := json.Unmarshal(raw["required"], &f.Required); err != nil {
		return nil, fmt.Errorf("field required flag: %w", err)
	}
	if msg, ok := raw["type"]; ok {
		if err := json.Unmarshal(msg, &f.Type); err != nil {
			return nil, fmt.Errorf("field type: %w", err)
		}
	}
	if msg, ok := raw["options"]; ok {
		if err := json.Unmarshal(msg, &f.Options); err != nil {
			return nil, fmt.Errorf("field options: %w", err)
		}
	}
	return f, nil
}

func decodeArray(dec *json.Decoder) (Node, error) {
	l := &List{}
	for dec.More() {
		item, err := decodeNode(dec)
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, item)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return l, nil
}

// MarshalJSON keeps the field object shape stable for downstream renderers.
func (f *Field) MarshalJSON() ([]byte, error) {
	type alias Field
	return json.Marshal((*alias)(f))
}

func (s *Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(s.nodes[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *List) MarshalJSON() ([]byte, error) {
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.V)
}
