package render

import (
	"strings"
	"testing"

	"bail-assistant-be/pkg/document"
)

const renderFixture = `{
  "designation_parties": {
    "bailleur": {
      "nom_prenom": {"value": "Marie Dupont", "required": true, "type": "text"}
    },
    "locataires": {
      "liste": [
        {"nom_prenom": {"value": "Jean Martin", "required": true, "type": "text"}},
        {"nom_prenom": {"value": "", "required": true, "type": "text"}}
      ]
    }
  },
  "conditions_financieres": {
    "loyer": {
      "montant_hors_charges": {"value": 850, "required": true, "type": "number"},
      "charges_comprises": {"value": true, "required": true, "type": "boolean"}
    }
  }
}`

func fixtureTree(t *testing.T) *document.Section {
	t.Helper()
	root, err := document.DecodeTree([]byte(renderFixture))
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	return root
}

func TestMarkdownRendering(t *testing.T) {
	md := Markdown("Contrat de location", fixtureTree(t))

	for _, want := range []string{
		"# Contrat de location",
		"## Designation parties",
		"Marie Dupont",
		"Jean Martin",
		"850",
		"Oui",
		"_non renseigné_",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}

	// Category order follows the document, not alphabetical order.
	if strings.Index(md, "Designation parties") > strings.Index(md, "Conditions financieres") {
		t.Errorf("categories out of document order:\n%s", md)
	}
}

func TestMarkdownListItemNumbering(t *testing.T) {
	md := Markdown("Bail", fixtureTree(t))

	first := strings.Index(md, "1 :")
	second := strings.Index(md, "2 :")
	if first == -1 || second == -1 || first > second {
		t.Errorf("expected numbered list items in order, got:\n%s", md)
	}
}

func TestHTMLRendering(t *testing.T) {
	html, err := HTML("Contrat de location", fixtureTree(t))
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	out := string(html)
	for _, want := range []string{
		"<h1",
		"<h2",
		"Marie Dupont",
		"<strong>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q\n%s", want, out)
		}
	}
}
