package document

import "fmt"

// FieldStatus describes one field of a list item: its relative path within
// the item, whether it currently holds a value, and the field metadata an
// agent needs to decide what to ask next.
type FieldStatus struct {
	Path     string `json:"path"`
	Filled   bool   `json:"filled"`
	Value    any    `json:"value"`
	Required bool   `json:"required"`
}

// ListItemInfo summarizes one item of a repeatable list.
type ListItemInfo struct {
	Index  int           `json:"index"`
	Fields []FieldStatus `json:"fields"`
}

// ListInfo is the ordered per-item summary of a repeatable list.
type ListInfo struct {
	Path  string         `json:"path"`
	Count int            `json:"count"`
	Items []ListItemInfo `json:"items"`
}

// InspectList resolves listPath and reports every item's field fill state
// in template order.
func InspectList(root Node, listPath string) (*ListInfo, error) {
	n, err := Resolve(root, listPath)
	if err != nil {
		return nil, err
	}
	list, ok := n.(*List)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAList, listPath)
	}
	info := &ListInfo{Path: listPath, Count: len(list.Items)}
	for i, item := range list.Items {
		entry := ListItemInfo{Index: i, Fields: []FieldStatus{}}
		collectFieldStatus(item, "", &entry.Fields)
		info.Items = append(info.Items, entry)
	}
	return info, nil
}

// ListLength returns the number of items in the list at listPath.
func ListLength(root Node, listPath string) (int, error) {
	n, err := Resolve(root, listPath)
	if err != nil {
		return 0, err
	}
	list, ok := n.(*List)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotAList, listPath)
	}
	return len(list.Items), nil
}

func collectFieldStatus(n Node, prefix string, out *[]FieldStatus) {
	switch t := n.(type) {
	case *Field:
		*out = append(*out, FieldStatus{
			Path:     prefix,
			Filled:   !t.IsEmpty(),
			Value:    t.Value,
			Required: t.Required,
		})
	case *Section:
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			collectFieldStatus(child, extendPath(prefix, k), out)
		}
	case *List:
		for i, item := range t.Items {
			collectFieldStatus(item, extendPath(prefix, fmt.Sprintf("%d", i)), out)
		}
	}
}
