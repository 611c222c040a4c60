package document

import "testing"

func TestProgressFreshTemplate(t *testing.T) {
	root := mustDecode(t)
	progress := Progress(root)

	// designation_parties: bailleur.nom_prenom, bailleur.type_personne,
	// locataires.liste.0.nom_prenom — three required fields, none filled.
	dp := progress["designation_parties"]
	if dp.Filled != 0 || dp.Total != 3 {
		t.Errorf("designation_parties = %d/%d, want 0/3", dp.Filled, dp.Total)
	}

	cf := progress["conditions_financieres"]
	if cf.Filled != 0 || cf.Total != 2 {
		t.Errorf("conditions_financieres = %d/%d, want 0/2", cf.Filled, cf.Total)
	}
}

func TestProgressCountsFills(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "conditions_financieres.loyer.montant_hors_charges", 800); err != nil {
		t.Fatalf("Set: %v", err)
	}
	progress := Progress(root)
	cf := progress["conditions_financieres"]
	if cf.Filled != 1 || cf.Total != 2 {
		t.Errorf("conditions_financieres = %d/%d, want 1/2", cf.Filled, cf.Total)
	}
	if cf.Percentage() != 50 {
		t.Errorf("percentage = %d, want 50", cf.Percentage())
	}
}

func TestProgressFixedFieldsNeverCounted(t *testing.T) {
	root := mustDecode(t)
	meta := Progress(root)["meta_donnees"]
	if meta.Total != 0 {
		t.Errorf("meta_donnees total = %d, want 0 (only a fixed field)", meta.Total)
	}
	if meta.Applicable() {
		t.Error("category with only fixed fields must not be applicable")
	}

	// A fixed field stays excluded regardless of its value.
	if err := Set(root, "meta_donnees.type_document", ""); err != nil {
		t.Fatalf("Set: %v", err)
	}
	meta = Progress(root)["meta_donnees"]
	if meta.Total != 0 {
		t.Errorf("total after clearing fixed field = %d, want 0", meta.Total)
	}
}

func TestProgressPercentageFloors(t *testing.T) {
	p := CategoryProgress{Filled: 1, Total: 3}
	if p.Percentage() != 33 {
		t.Errorf("percentage = %d, want 33", p.Percentage())
	}
	p = CategoryProgress{Filled: 2, Total: 3}
	if p.Percentage() != 66 {
		t.Errorf("percentage = %d, want 66", p.Percentage())
	}
}

func TestOverall(t *testing.T) {
	root := mustDecode(t)
	Set(root, "conditions_financieres.loyer.montant_hors_charges", 800)
	Set(root, "duree_contrat.date_prise_effet", "2026-09-01")

	overall := Overall(Progress(root))
	// 7 required non-fixed fields in the test template, 2 filled.
	if overall.Total != 7 || overall.Filled != 2 {
		t.Errorf("overall = %d/%d, want 2/7", overall.Filled, overall.Total)
	}
}

func TestMissingRequiredPaths(t *testing.T) {
	root := mustDecode(t)
	node, _ := root.Get("duree_contrat")

	missing := MissingRequiredPaths(node)
	want := []string{"date_prise_effet", "duree_mois"}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}

	// Filling everything empties the report.
	Set(root, "duree_contrat.date_prise_effet", "2026-09-01")
	Set(root, "duree_contrat.duree_mois", 12)
	node, _ = root.Get("duree_contrat")
	if missing := MissingRequiredPaths(node); len(missing) != 0 {
		t.Errorf("missing after fill = %v, want none", missing)
	}
}

func TestMissingRequiredPathsIncludesListIndices(t *testing.T) {
	root := mustDecode(t)
	AddListItem(root, "designation_parties.locataires.liste", nil)

	node, _ := root.Get("designation_parties")
	missing := MissingRequiredPaths(node)

	found := map[string]bool{}
	for _, p := range missing {
		found[p] = true
	}
	if !found["locataires.liste.0.nom_prenom"] || !found["locataires.liste.1.nom_prenom"] {
		t.Errorf("missing = %v, want both list item paths", missing)
	}
}
