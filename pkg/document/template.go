package document

import (
	"fmt"
	"os"
)

// Template is the canonical all-empty document shape, loaded once at
// startup and read-only afterwards. New sessions are materialized as deep
// copies; the template itself is never mutated.
//
// At load time the first item of every repeatable list is captured as that
// list's item schema, so new list items are stamped from the canonical
// shape rather than from whatever a session's item 0 happens to look like.
type Template struct {
	root        *Section
	paths       Paths
	itemSchemas map[string]Node
}

// LoadTemplate reads and parses the canonical template file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return ParseTemplate(data)
}

// ParseTemplate builds a Template from serialized JSON.
func ParseTemplate(data []byte) (*Template, error) {
	root, err := DecodeTree(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	t := &Template{
		root:        root,
		paths:       CollectPaths(root),
		itemSchemas: make(map[string]Node),
	}
	t.captureItemSchemas(root, "")
	return t, nil
}

func (t *Template) captureItemSchemas(n Node, prefix string) {
	switch node := n.(type) {
	case *Section:
		for _, k := range node.Keys() {
			child, _ := node.Get(k)
			t.captureItemSchemas(child, extendPath(prefix, k))
		}
	case *List:
		if len(node.Items) > 0 {
			t.itemSchemas[prefix] = emptyCopy(node.Items[0])
		}
		for i, item := range node.Items {
			t.captureItemSchemas(item, extendPath(prefix, fmt.Sprintf("%d", i)))
		}
	}
}

// Instantiate returns a fresh deep copy of the template tree for a new
// session.
func (t *Template) Instantiate() *Section {
	return t.root.Clone().(*Section)
}

// AllPaths returns every field path and list path of the canonical shape.
// Paths are derived from the template, not from any session, so they stay
// stable regardless of how many repeatable items a session currently has.
func (t *Template) AllPaths() Paths {
	return Paths{
		FieldPaths: append([]string(nil), t.paths.FieldPaths...),
		ListPaths:  append([]string(nil), t.paths.ListPaths...),
	}
}

// ItemSchema returns the canonical empty item for the list at listPath, or
// nil when the template holds no such list. Integer steps in listPath are
// normalized to the template's representative index 0, so session paths
// referring to later items still resolve.
func (t *Template) ItemSchema(listPath string) Node {
	steps, err := ParsePath(listPath)
	if err != nil {
		return nil
	}
	for i := range steps {
		if steps[i].IsIndex {
			steps[i].Index = 0
		}
	}
	schema, ok := t.itemSchemas[joinSteps(steps)]
	if !ok {
		return nil
	}
	return schema.Clone()
}

// Root exposes the canonical tree for read-only inspection (path
// validation, documentation). Mutating it is a programming error.
func (t *Template) Root() *Section {
	return t.root
}
