package lam

import (
	"encoding/json"
)

func (r Record) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// MarshalJSON encodes a record as an object, instead of the text form used for
// map keys and plain-text output.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"predicate": r.Predicate,
		"address":   r.Address,
	})
}

// MarshalYAML encodes a record as a mapping.
func (r Record) MarshalYAML() (interface{}, error) {
	return map[string]interface{}{
		"predicate": r.Predicate,
		"address":   r.Address,
	}, nil
}
