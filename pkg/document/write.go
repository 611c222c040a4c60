package document

import "fmt"

// Set writes value at path. When the addressed node is Field-shaped its
// value is updated in place; otherwise the parent's entry is replaced
// outright with the raw value. Writing to a non-existent mapping key is an
// error, never an implicit create.
func Set(root Node, path string, value any) error {
	parent, final, err := resolveParent(root, path)
	if err != nil {
		return err
	}
	switch p := parent.(type) {
	case *List:
		if !final.IsIndex {
			return fmt.Errorf("%w, got %q", ErrInvalidIndexType, final.Key)
		}
		if final.Index < 0 || final.Index >= len(p.Items) {
			return fmt.Errorf("%w: index %d (list has %d items)", ErrIndexOutOfRange, final.Index, len(p.Items))
		}
		if f, ok := p.Items[final.Index].(*Field); ok {
			f.Value = value
		} else {
			p.Items[final.Index] = &Value{V: value}
		}
		return nil
	case *Section:
		existing, ok := p.Get(final.String())
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, final.String())
		}
		if f, ok := existing.(*Field); ok {
			f.Value = value
		} else {
			p.Put(final.String(), &Value{V: value})
		}
		return nil
	default:
		return fmt.Errorf("%w (at %q)", ErrNotNavigable, final.String())
	}
}

// AddListItem appends a new item to the list at listPath and returns the
// new item's index. When itemSchema is non-nil it is cloned and appended;
// otherwise the first existing item is deep-copied with every field reset
// to its empty sentinel. An empty list with no schema cannot grow.
func AddListItem(root Node, listPath string, itemSchema Node) (int, error) {
	n, err := Resolve(root, listPath)
	if err != nil {
		return 0, err
	}
	list, ok := n.(*List)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotAList, listPath)
	}
	var item Node
	switch {
	case itemSchema != nil:
		item = itemSchema.Clone()
	case len(list.Items) > 0:
		item = emptyCopy(list.Items[0])
	default:
		return 0, ErrEmptyTemplate
	}
	list.Items = append(list.Items, item)
	return len(list.Items) - 1, nil
}

// RemoveListItem deletes the item at index from the list at listPath.
// The last remaining item can never be removed: it doubles as the
// structural fallback for AddListItem. Indices of subsequent items shift
// down by one.
func RemoveListItem(root Node, listPath string, index int) error {
	n, err := Resolve(root, listPath)
	if err != nil {
		return err
	}
	list, ok := n.(*List)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotAList, listPath)
	}
	if index < 0 || index >= len(list.Items) {
		return fmt.Errorf("%w: index %d (list has %d items)", ErrIndexOutOfRange, index, len(list.Items))
	}
	if len(list.Items) <= 1 {
		return ErrLastItemProtected
	}
	list.Items = append(list.Items[:index], list.Items[index+1:]...)
	return nil
}
