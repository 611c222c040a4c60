package document

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceValue converts an incoming raw value toward the declared type of
// its target field. Coercion is type-directed: a string is only turned
// into a bool or a number when the field actually declares that type, so a
// text field whose value happens to look numeric stays a string. Values
// that cannot be coerced pass through unchanged; the engine does not
// reject them.
func CoerceValue(fieldType FieldType, value any) any {
	switch fieldType {
	case FieldBoolean:
		return coerceBool(value)
	case FieldNumber, FieldYear:
		return coerceNumber(value)
	default:
		return value
	}
}

func coerceBool(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		return value
	}
}

func coerceNumber(value any) any {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, ".") {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			return v
		}
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return v
	case json.Number:
		// Normalize decoder numbers so stored values compare naturally.
		if !strings.Contains(v.String(), ".") {
			if n, err := v.Int64(); err == nil {
				return int(n)
			}
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v
	default:
		return value
	}
}
