package document

// CategoryProgress is the fill statistic of one top-level category:
// required, non-fixed fields found (Total) versus those non-empty (Filled).
type CategoryProgress struct {
	Filled int
	Total  int
}

// Applicable reports whether the category has any countable fields.
// Non-applicable categories have no defined percentage.
func (p CategoryProgress) Applicable() bool {
	return p.Total > 0
}

// Percentage is floor(filled/total*100), or 0 when not applicable.
func (p CategoryProgress) Percentage() int {
	if p.Total == 0 {
		return 0
	}
	return p.Filled * 100 / p.Total
}

// Progress walks every top-level category of the tree and computes its
// fill statistic. Fixed fields and optional fields are never counted.
func Progress(root *Section) map[string]CategoryProgress {
	progress := make(map[string]CategoryProgress, root.Len())
	for _, category := range root.Keys() {
		node, _ := root.Get(category)
		filled, total := countRequired(node)
		progress[category] = CategoryProgress{Filled: filled, Total: total}
	}
	return progress
}

// Overall combines per-category statistics into a single document-wide
// fill statistic.
func Overall(progress map[string]CategoryProgress) CategoryProgress {
	var sum CategoryProgress
	for _, p := range progress {
		sum.Filled += p.Filled
		sum.Total += p.Total
	}
	return sum
}

func countRequired(n Node) (filled, total int) {
	switch t := n.(type) {
	case *Field:
		if t.Type == FieldFixed || !t.Required {
			return 0, 0
		}
		if t.IsEmpty() {
			return 0, 1
		}
		return 1, 1
	case *Section:
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			f, c := countRequired(child)
			filled += f
			total += c
		}
	case *List:
		for _, item := range t.Items {
			f, c := countRequired(item)
			filled += f
			total += c
		}
	}
	return filled, total
}
