package document

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Step
	}{
		{
			name: "plain keys",
			path: "a.b.c",
			want: []Step{{Key: "a"}, {Key: "b"}, {Key: "c"}},
		},
		{
			name: "dotted index",
			path: "locataires.liste.0.nom_prenom",
			want: []Step{{Key: "locataires"}, {Key: "liste"}, {Index: 0, IsIndex: true}, {Key: "nom_prenom"}},
		},
		{
			name: "bracketed index",
			path: "locataires.liste[0].nom_prenom",
			want: []Step{{Key: "locataires"}, {Key: "liste"}, {Index: 0, IsIndex: true}, {Key: "nom_prenom"}},
		},
		{
			name: "multi-digit index",
			path: "liste.12",
			want: []Step{{Key: "liste"}, {Index: 12, IsIndex: true}},
		},
		{
			name: "key with digits and letters stays a key",
			path: "a1.b2c",
			want: []Step{{Key: "a1"}, {Key: "b2c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath(%q): %v", tt.path, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("steps = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("step[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePathEmpty(t *testing.T) {
	if _, err := ParsePath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("err = %v, want ErrEmptyPath", err)
	}
}

func TestBracketDotEquivalence(t *testing.T) {
	root := mustDecode(t)
	if err := Set(root, "designation_parties.locataires.liste[0].email", "a@b.com"); err != nil {
		t.Fatalf("Set bracketed: %v", err)
	}
	v, err := GetValue(root, "designation_parties.locataires.liste.0.email")
	if err != nil {
		t.Fatalf("GetValue dotted: %v", err)
	}
	if v != "a@b.com" {
		t.Errorf("value = %v, want a@b.com", v)
	}
}

func TestResolveErrors(t *testing.T) {
	root := mustDecode(t)
	tests := []struct {
		name string
		path string
		want error
	}{
		{"unknown key", "designation_parties.inconnu", ErrKeyNotFound},
		{"unknown nested key", "no.such.path", ErrKeyNotFound},
		{"index out of range", "designation_parties.locataires.liste.5.nom_prenom", ErrIndexOutOfRange},
		{"string step against list", "designation_parties.locataires.liste.premier", ErrInvalidIndexType},
		{"descend through field", "designation_parties.bailleur.nom_prenom.value.deeper", ErrNotNavigable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(root, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve(%q) err = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	root := mustDecode(t)
	before, err := EncodeTree(root)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	Resolve(root, "designation_parties.locataires.liste.0.nom_prenom")
	Resolve(root, "no.such.path")
	after, err := EncodeTree(root)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	if string(before) != string(after) {
		t.Error("resolution mutated the tree")
	}
}
