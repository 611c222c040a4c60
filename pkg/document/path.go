package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Step is one hop of a parsed path: either a string key into a section or
// an integer index into a list.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Step) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// ParsePath splits a dotted (optionally bracketed) address into steps.
// "a.b[0].c" and "a.b.0.c" are equivalent: bracketed indices are rewritten
// to dotted form before splitting, and all-digit segments become indices.
func ParsePath(path string) ([]Step, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	normalized := bracketIndex.ReplaceAllString(path, ".$1")
	parts := strings.Split(normalized, ".")
	steps := make([]Step, 0, len(parts))
	for _, p := range parts {
		if p != "" && isDigits(p) {
			idx, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("segment %q: %w", p, err)
			}
			steps = append(steps, Step{Index: idx, IsIndex: true})
		} else {
			steps = append(steps, Step{Key: p})
		}
	}
	return steps, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// joinSteps renders steps back to canonical dotted form.
func joinSteps(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// descend takes a single navigation step from current. It never mutates the
// tree.
func descend(current Node, step Step) (Node, error) {
	switch n := current.(type) {
	case *List:
		if !step.IsIndex {
			return nil, fmt.Errorf("%w, got %q", ErrInvalidIndexType, step.Key)
		}
		if step.Index < 0 || step.Index >= len(n.Items) {
			return nil, fmt.Errorf("%w: index %d (list has %d items)", ErrIndexOutOfRange, step.Index, len(n.Items))
		}
		return n.Items[step.Index], nil
	case *Section:
		child, ok := n.Get(step.String())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, step.String())
		}
		return child, nil
	default:
		return nil, fmt.Errorf("%w (at %q)", ErrNotNavigable, step.String())
	}
}

// Resolve navigates from root through every step of path and returns the
// addressed node. Traversal is read-only.
func Resolve(root Node, path string) (Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	current := root
	for _, step := range steps {
		current, err = descend(current, step)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

// resolveParent navigates to the parent container of the final step so the
// caller can apply a write. Returns the parent node and the final step.
func resolveParent(root Node, path string) (Node, Step, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, Step{}, err
	}
	current := root
	for _, step := range steps[:len(steps)-1] {
		current, err = descend(current, step)
		if err != nil {
			return nil, Step{}, err
		}
	}
	return current, steps[len(steps)-1], nil
}
