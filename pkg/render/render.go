// Package render turns a document tree snapshot into a human-readable
// artifact: markdown first, HTML through goldmark. The tree is consumed
// unchanged; a node under a key is either Field-shaped or a container, and
// the renderer falls back to the raw value when it is neither.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"bail-assistant-be/pkg/document"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the full document as a markdown outline: one section
// per top-level category, fields as labelled lines, repeatable items as
// numbered sub-blocks.
func Markdown(title string, root *document.Section) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n")
	for _, category := range root.Keys() {
		node, _ := root.Get(category)
		b.WriteString("\n## " + humanize(category) + "\n\n")
		writeNode(&b, node, 0)
	}
	return b.String()
}

// HTML converts the markdown rendering to HTML.
func HTML(title string, root *document.Section) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(title, root)), &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func writeNode(b *strings.Builder, n document.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case *document.Field:
		// handled by the parent, which knows the label
	case *document.Section:
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			switch c := child.(type) {
			case *document.Field:
				b.WriteString(fmt.Sprintf("%s- **%s** : %s\n", indent, humanize(k), displayValue(c.Value)))
			case *document.Value:
				b.WriteString(fmt.Sprintf("%s- **%s** : %s\n", indent, humanize(k), displayValue(c.V)))
			case *document.List:
				b.WriteString(fmt.Sprintf("%s- **%s** :\n", indent, humanize(k)))
				for i, item := range c.Items {
					b.WriteString(fmt.Sprintf("%s  - %s %d :\n", indent, humanize(singular(k)), i+1))
					writeNode(b, item, depth+2)
				}
			case *document.Section:
				b.WriteString(fmt.Sprintf("%s- **%s** :\n", indent, humanize(k)))
				writeNode(b, c, depth+1)
			}
		}
	case *document.List:
		for i, item := range t.Items {
			b.WriteString(fmt.Sprintf("%s- Élément %d :\n", indent, i+1))
			writeNode(b, item, depth+1)
		}
	case *document.Value:
		b.WriteString(fmt.Sprintf("%s- %s\n", indent, displayValue(t.V)))
	}
}

func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "_non renseigné_"
	case string:
		if val == "" {
			return "_non renseigné_"
		}
		return val
	case bool:
		if val {
			return "Oui"
		}
		return "Non"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// humanize turns a snake_case key into a display label.
func humanize(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if i == 0 && len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// singular trims the common plural listing keys for item labels
// ("locataires" items become "Locataire 1").
func singular(key string) string {
	if key == "liste" {
		return "élément"
	}
	return strings.TrimSuffix(key, "s")
}
