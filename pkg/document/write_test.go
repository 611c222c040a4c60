package document

import (
	"errors"
	"testing"
)

func TestSetUpdatesFieldInPlace(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "conditions_financieres.loyer.montant_hors_charges", 800); err != nil {
		t.Fatalf("Set: %v", err)
	}
	f, err := GetField(root, "conditions_financieres.loyer.montant_hors_charges")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if f.Value != 800 {
		t.Errorf("Value = %v, want 800", f.Value)
	}
	// Metadata must survive the write.
	if !f.Required || f.Type != FieldNumber {
		t.Errorf("metadata lost: required:%v type:%q", f.Required, f.Type)
	}
}

func TestSetUnknownKeyDoesNotCreate(t *testing.T) {
	root := mustDecode(t)
	err := Set(root, "designation_parties.bailleur.inconnu", "x")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
	if _, err := Resolve(root, "designation_parties.bailleur.inconnu"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("rejected write created the key anyway")
	}
}

func TestSetReplacesNonFieldOutright(t *testing.T) {
	root := mustDecode(t)
	// "loyer" is a section, not a field: the entry is replaced with the raw
	// value rather than updated in place.
	if err := Set(root, "conditions_financieres.loyer", "flat"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := GetValue(root, "conditions_financieres.loyer")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if v != "flat" {
		t.Errorf("value = %v, want flat", v)
	}
}

func TestSetListElement(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "designation_parties.locataires.liste.0.nom_prenom", "Marie Dupont"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _ := GetValue(root, "designation_parties.locataires.liste.0.nom_prenom")
	if v != "Marie Dupont" {
		t.Errorf("value = %v", v)
	}

	if err := Set(root, "designation_parties.locataires.liste.3.nom_prenom", "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAddListItemFromFirstElement(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "designation_parties.locataires.liste.0.nom_prenom", "Marie Dupont"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	idx, err := AddListItem(root, "designation_parties.locataires.liste", nil)
	if err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}

	// New item shares structure but every field is reset.
	f, err := GetField(root, "designation_parties.locataires.liste.1.nom_prenom")
	if err != nil {
		t.Fatalf("GetField on new item: %v", err)
	}
	if !f.IsEmpty() {
		t.Errorf("new item field not empty: %v", f.Value)
	}
	if !f.Required || f.Type != FieldText {
		t.Errorf("new item metadata = required:%v type:%q", f.Required, f.Type)
	}

	// Item 0 untouched.
	v, _ := GetValue(root, "designation_parties.locataires.liste.0.nom_prenom")
	if v != "Marie Dupont" {
		t.Errorf("item 0 value = %v", v)
	}
}

func TestAddListItemWithSchema(t *testing.T) {
	root := mustDecode(t)
	schema := NewSection()
	schema.Put("nom_prenom", &Field{Value: "", Required: true, Type: FieldText})

	idx, err := AddListItem(root, "designation_parties.locataires.liste", schema)
	if err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
}

func TestAddListItemEmptyListNoSchema(t *testing.T) {
	root := NewSection()
	root.Put("garants", &List{})
	_, err := AddListItem(root, "garants", nil)
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("err = %v, want ErrEmptyTemplate", err)
	}
}

func TestAddListItemNotAList(t *testing.T) {
	root := mustDecode(t)
	_, err := AddListItem(root, "designation_parties.bailleur", nil)
	if !errors.Is(err, ErrNotAList) {
		t.Errorf("err = %v, want ErrNotAList", err)
	}
}

func TestRemoveListItem(t *testing.T) {
	root := mustDecode(t)
	if _, err := AddListItem(root, "designation_parties.locataires.liste", nil); err != nil {
		t.Fatalf("AddListItem: %v", err)
	}

	if err := RemoveListItem(root, "designation_parties.locataires.liste", 1); err != nil {
		t.Fatalf("RemoveListItem: %v", err)
	}
	n, err := ListLength(root, "designation_parties.locataires.liste")
	if err != nil || n != 1 {
		t.Fatalf("length = %d (%v), want 1", n, err)
	}

	// The last remaining item is protected.
	err = RemoveListItem(root, "designation_parties.locataires.liste", 0)
	if !errors.Is(err, ErrLastItemProtected) {
		t.Errorf("err = %v, want ErrLastItemProtected", err)
	}
}

func TestRemoveListItemOutOfRange(t *testing.T) {
	root := mustDecode(t)
	err := RemoveListItem(root, "designation_parties.locataires.liste", 4)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRemoveShiftsIndices(t *testing.T) {
	root := mustDecode(t)
	AddListItem(root, "designation_parties.locataires.liste", nil)
	AddListItem(root, "designation_parties.locataires.liste", nil)
	Set(root, "designation_parties.locataires.liste.0.nom_prenom", "a")
	Set(root, "designation_parties.locataires.liste.1.nom_prenom", "b")
	Set(root, "designation_parties.locataires.liste.2.nom_prenom", "c")

	if err := RemoveListItem(root, "designation_parties.locataires.liste", 1); err != nil {
		t.Fatalf("RemoveListItem: %v", err)
	}
	v, _ := GetValue(root, "designation_parties.locataires.liste.1.nom_prenom")
	if v != "c" {
		t.Errorf("item 1 after removal = %v, want c", v)
	}
}
