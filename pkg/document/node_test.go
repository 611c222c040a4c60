package document

import (
	"encoding/json"
	"testing"
)

const testTemplate = `{
  "designation_parties": {
    "bailleur": {
      "nom_prenom": {"value": "", "required": true, "type": "text"},
      "email": {"value": "", "required": false, "type": "text"},
      "type_personne": {"value": "", "required": true, "type": "choice", "options": ["physique", "morale"]}
    },
    "locataires": {
      "liste": [
        {
          "nom_prenom": {"value": "", "required": true, "type": "text"},
          "email": {"value": "", "required": false, "type": "text"}
        }
      ]
    }
  },
  "conditions_financieres": {
    "loyer": {
      "montant_hors_charges": {"value": null, "required": true, "type": "number"},
      "charges_comprises": {"value": null, "required": true, "type": "boolean"}
    }
  },
  "duree_contrat": {
    "date_prise_effet": {"value": "", "required": true, "type": "date"},
    "duree_mois": {"value": null, "required": true, "type": "number"}
  },
  "meta_donnees": {
    "type_document": {"value": "Bail de location", "required": true, "type": "fixed"}
  }
}`

func mustDecode(t *testing.T) *Section {
	t.Helper()
	root, err := DecodeTree([]byte(testTemplate))
	if err != nil {
		t.Fatalf("DecodeTree failed: %v", err)
	}
	return root
}

func TestDecodeClassification(t *testing.T) {
	root := mustDecode(t)

	n, err := Resolve(root, "designation_parties.bailleur.nom_prenom")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	f, ok := n.(*Field)
	if !ok {
		t.Fatalf("expected *Field, got %T", n)
	}
	if !f.Required || f.Type != FieldText {
		t.Errorf("field metadata = required:%v type:%q", f.Required, f.Type)
	}

	n, err = Resolve(root, "designation_parties.bailleur")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := n.(*Section); !ok {
		t.Errorf("expected *Section, got %T", n)
	}

	n, err = Resolve(root, "designation_parties.locataires.liste")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := n.(*List); !ok {
		t.Errorf("expected *List, got %T", n)
	}
}

func TestDecodeOptions(t *testing.T) {
	root := mustDecode(t)
	f, err := GetField(root, "designation_parties.bailleur.type_personne")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if len(f.Options) != 2 || f.Options[0] != "physique" || f.Options[1] != "morale" {
		t.Errorf("Options = %v", f.Options)
	}
}

func TestRoundTrip(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "designation_parties.bailleur.nom_prenom", "Jean Martin"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(root, "conditions_financieres.loyer.montant_hors_charges", 800); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := EncodeTree(root)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	reloaded, err := DecodeTree(data)
	if err != nil {
		t.Fatalf("DecodeTree after encode: %v", err)
	}

	v, err := GetValue(reloaded, "designation_parties.bailleur.nom_prenom")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if v != "Jean Martin" {
		t.Errorf("value = %v, want Jean Martin", v)
	}

	v, err = GetValue(reloaded, "conditions_financieres.loyer.montant_hors_charges")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if num, ok := v.(json.Number); !ok || num.String() != "800" {
		t.Errorf("value = %v (%T), want json.Number 800", v, v)
	}
}

func TestSectionKeyOrderPreserved(t *testing.T) {
	root := mustDecode(t)
	want := []string{"designation_parties", "conditions_financieres", "duree_contrat", "meta_donnees"}
	got := root.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFieldIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"empty slice", []any{}, true},
		{"string", "x", false},
		{"zero number", 0, false},
		{"false", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Field{Value: tt.value, Required: true, Type: FieldText}
			if got := f.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDecodeRejectsScalarRoot(t *testing.T) {
	if _, err := DecodeTree([]byte(`"not a tree"`)); err == nil {
		t.Error("expected error for scalar root")
	}
	if _, err := DecodeTree([]byte(`[1, 2]`)); err == nil {
		t.Error("expected error for array root")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := mustDecode(t)
	clone := root.Clone().(*Section)

	if err := Set(clone, "designation_parties.bailleur.nom_prenom", "Mutated"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := GetValue(root, "designation_parties.bailleur.nom_prenom")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if v != "" {
		t.Errorf("original tree mutated through clone: value = %v", v)
	}
}
