package document

import "fmt"

// GetValue resolves path and returns the field's value when the addressed
// node is a Field, the raw scalar when it is a Value, and the node itself
// otherwise. Callers are expected to address leaf paths.
func GetValue(root Node, path string) (any, error) {
	n, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	switch t := n.(type) {
	case *Field:
		return t.Value, nil
	case *Value:
		return t.V, nil
	default:
		return t, nil
	}
}

// GetField resolves path and returns the addressed Field, or an error when
// the node is not Field-shaped.
func GetField(root Node, path string) (*Field, error) {
	n, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	f, ok := n.(*Field)
	if !ok {
		return nil, fmt.Errorf("path %q does not address a field", path)
	}
	return f, nil
}

// MissingRequiredPaths collects, relative to node, the dotted path of every
// required, non-fixed Field whose value is still empty. List items are
// addressed by their numeric index.
func MissingRequiredPaths(node Node) []string {
	missing := []string{}
	var walk func(n Node, prefix string)
	walk = func(n Node, prefix string) {
		switch t := n.(type) {
		case *Field:
			if t.Type == FieldFixed {
				return
			}
			if t.Required && t.IsEmpty() {
				missing = append(missing, prefix)
			}
		case *Section:
			for _, k := range t.Keys() {
				child, _ := t.Get(k)
				walk(child, extendPath(prefix, k))
			}
		case *List:
			for i, item := range t.Items {
				walk(item, extendPath(prefix, fmt.Sprintf("%d", i)))
			}
		}
	}
	walk(node, "")
	return missing
}

// Paths is the valid write surface of a template: every field address plus
// every repeatable-list address.
type Paths struct {
	FieldPaths []string `json:"field_paths"`
	ListPaths  []string `json:"list_paths"`
}

// CollectPaths enumerates every field path and list path under node. It is
// meant to run against the canonical template so that paths are independent
// of how many repeatable items any given session holds (the template's
// single item, index 0, acts as the representative element).
func CollectPaths(node Node) Paths {
	p := Paths{FieldPaths: []string{}, ListPaths: []string{}}
	var walk func(n Node, prefix string)
	walk = func(n Node, prefix string) {
		switch t := n.(type) {
		case *Field:
			p.FieldPaths = append(p.FieldPaths, prefix)
		case *Section:
			for _, k := range t.Keys() {
				child, _ := t.Get(k)
				walk(child, extendPath(prefix, k))
			}
		case *List:
			p.ListPaths = append(p.ListPaths, prefix)
			for i, item := range t.Items {
				walk(item, extendPath(prefix, fmt.Sprintf("%d", i)))
			}
		}
	}
	walk(node, "")
	return p
}

func extendPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
