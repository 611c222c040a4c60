package document

import (
	"errors"
	"testing"
)

func mustTemplate(t *testing.T) *Template {
	t.Helper()
	tpl, err := ParseTemplate([]byte(testTemplate))
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	return tpl
}

func TestAllPaths(t *testing.T) {
	tpl := mustTemplate(t)
	paths := tpl.AllPaths()

	if len(paths.ListPaths) != 1 || paths.ListPaths[0] != "designation_parties.locataires.liste" {
		t.Errorf("ListPaths = %v", paths.ListPaths)
	}

	// Every advertised field path must resolve to a Field on the template.
	for _, p := range paths.FieldPaths {
		if _, err := GetField(tpl.Root(), p); err != nil {
			t.Errorf("field path %q does not address a field: %v", p, err)
		}
	}

	// 9 fields total in the test template (including optional and fixed).
	if len(paths.FieldPaths) != 9 {
		t.Errorf("FieldPaths count = %d, want 9: %v", len(paths.FieldPaths), paths.FieldPaths)
	}
}

func TestInstantiateIsIsolated(t *testing.T) {
	tpl := mustTemplate(t)
	a := tpl.Instantiate()
	b := tpl.Instantiate()

	if err := Set(a, "designation_parties.bailleur.nom_prenom", "Jean"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, _ := GetValue(b, "designation_parties.bailleur.nom_prenom")
	if v != "" {
		t.Errorf("second instance affected by first: %v", v)
	}
	v, _ = GetValue(tpl.Root(), "designation_parties.bailleur.nom_prenom")
	if v != "" {
		t.Errorf("template mutated by session write: %v", v)
	}
}

func TestItemSchema(t *testing.T) {
	tpl := mustTemplate(t)
	schema := tpl.ItemSchema("designation_parties.locataires.liste")
	if schema == nil {
		t.Fatal("ItemSchema returned nil for a known list")
	}
	sec, ok := schema.(*Section)
	if !ok {
		t.Fatalf("schema = %T, want *Section", schema)
	}
	n, ok := sec.Get("nom_prenom")
	if !ok {
		t.Fatal("schema lacks nom_prenom")
	}
	f := n.(*Field)
	if !f.IsEmpty() || !f.Required {
		t.Errorf("schema field = value:%v required:%v", f.Value, f.Required)
	}

	if tpl.ItemSchema("no.such.list") != nil {
		t.Error("ItemSchema for unknown path should be nil")
	}
}

func TestItemSchemaDrivesAddOnEmptySessionList(t *testing.T) {
	tpl := mustTemplate(t)
	tree := tpl.Instantiate()

	// Even after the session has grown the list, the schema comes from the
	// canonical template, not from session item 0.
	Set(tree, "designation_parties.locataires.liste.0.nom_prenom", "Jean")
	idx, err := AddListItem(tree, "designation_parties.locataires.liste", tpl.ItemSchema("designation_parties.locataires.liste"))
	if err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	f, err := GetField(tree, "designation_parties.locataires.liste.1.nom_prenom")
	if err != nil || !f.IsEmpty() {
		t.Errorf("item %d not stamped empty from schema: %v (%v)", idx, f, err)
	}
}

func TestLoadTemplateMissingFile(t *testing.T) {
	if _, err := LoadTemplate("/nonexistent/template.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseTemplateInvalid(t *testing.T) {
	if _, err := ParseTemplate([]byte(`{"broken":`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestTemplateFieldPathsResolveAfterGrowth(t *testing.T) {
	tpl := mustTemplate(t)
	tree := tpl.Instantiate()
	if _, err := AddListItem(tree, "designation_parties.locataires.liste", nil); err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	// Advertised paths stay valid on grown sessions (index 0 exists always).
	for _, p := range tpl.AllPaths().FieldPaths {
		if _, err := Resolve(tree, p); err != nil && !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("path %q: %v", p, err)
		}
	}
}
