package document

import (
	"encoding/json"
	"testing"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		in        any
		want      any
	}{
		{"bool true", FieldBoolean, "true", true},
		{"bool false mixed case", FieldBoolean, "False", false},
		{"bool garbage passes through", FieldBoolean, "oui", "oui"},
		{"bool already bool", FieldBoolean, true, true},
		{"number integer", FieldNumber, "800", 800},
		{"number float", FieldNumber, "12.5", 12.5},
		{"number garbage passes through", FieldNumber, "huit cents", "huit cents"},
		{"year", FieldYear, "1998", 1998},
		{"text keeps numeric-looking string", FieldText, "800", "800"},
		{"text keeps boolean-looking string", FieldText, "true", "true"},
		{"date passes through", FieldDate, "2026-09-01", "2026-09-01"},
		{"choice passes through", FieldChoice, "physique", "physique"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceValue(tt.fieldType, tt.in)
			if got != tt.want {
				t.Errorf("CoerceValue(%q, %v) = %v (%T), want %v (%T)",
					tt.fieldType, tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestCoerceJSONNumber(t *testing.T) {
	got := CoerceValue(FieldNumber, json.Number("800"))
	if got != 800 {
		t.Errorf("int coercion = %v (%T), want 800", got, got)
	}
	got = CoerceValue(FieldNumber, json.Number("12.5"))
	if got != 12.5 {
		t.Errorf("float coercion = %v (%T), want 12.5", got, got)
	}
}
