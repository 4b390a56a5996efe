package service

import (
	"encoding/json"
	"strings"
)

// Boolish is a bool that accepts the loose encodings journal clients send:
// JSON booleans, "true"/"false"/"1"/"0" strings and numbers. Anything else
// non-empty is truthy.
type Boolish bool

func (b *Boolish) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = Boolish(t)
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		*b = s != "" && s != "false" && s != "0"
	case float64:
		*b = t != 0
	case nil:
		*b = false
	default:
		*b = true
	}
	return nil
}

// normalizeTag uppercases and trims an enumerated free-text field
// (option type, outcome color, strategy, ticker).
func normalizeTag(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func boolPtr(b *Boolish) *bool {
	if b == nil {
		return nil
	}
	v := bool(*b)
	return &v
}
