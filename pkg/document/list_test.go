package document

import (
	"errors"
	"testing"
)

func TestInspectList(t *testing.T) {
	root := mustDecode(t)
	Set(root, "designation_parties.locataires.liste.0.nom_prenom", "Marie Dupont")
	AddListItem(root, "designation_parties.locataires.liste", nil)

	info, err := InspectList(root, "designation_parties.locataires.liste")
	if err != nil {
		t.Fatalf("InspectList: %v", err)
	}
	if info.Count != 2 || len(info.Items) != 2 {
		t.Fatalf("count = %d items = %d, want 2/2", info.Count, len(info.Items))
	}

	first := info.Items[0]
	if first.Index != 0 {
		t.Errorf("first index = %d", first.Index)
	}
	var name, email *FieldStatus
	for i := range first.Fields {
		switch first.Fields[i].Path {
		case "nom_prenom":
			name = &first.Fields[i]
		case "email":
			email = &first.Fields[i]
		}
	}
	if name == nil || email == nil {
		t.Fatalf("fields = %+v", first.Fields)
	}
	if !name.Filled || name.Value != "Marie Dupont" || !name.Required {
		t.Errorf("name status = %+v", *name)
	}
	if email.Filled {
		t.Errorf("email should be empty: %+v", *email)
	}

	// Second item is all empty.
	for _, fs := range info.Items[1].Fields {
		if fs.Filled {
			t.Errorf("new item field %q filled: %v", fs.Path, fs.Value)
		}
	}
}

func TestInspectListNotAList(t *testing.T) {
	root := mustDecode(t)
	_, err := InspectList(root, "designation_parties.bailleur")
	if !errors.Is(err, ErrNotAList) {
		t.Errorf("err = %v, want ErrNotAList", err)
	}
}

func TestListLength(t *testing.T) {
	root := mustDecode(t)
	n, err := ListLength(root, "designation_parties.locataires.liste")
	if err != nil || n != 1 {
		t.Fatalf("length = %d (%v), want 1", n, err)
	}
	if _, err := ListLength(root, "duree_contrat"); !errors.Is(err, ErrNotAList) {
		t.Errorf("err = %v, want ErrNotAList", err)
	}
}
