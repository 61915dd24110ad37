package validation

import (
	"encoding/json"
	"reflect"
)

// NullableID is an optional id field that tells an absent key apart from an
// explicit null. Set is true whenever the key was present in the body.
type NullableID struct {
	Set bool
	ID  *string
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.ID = nil
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.ID = &id
	return nil
}

// Cleared reports an explicit null.
func (n NullableID) Cleared() bool {
	return n.Set && n.ID == nil
}

// validator sees the id itself, or nil when there is none
func nullableIDValue(field reflect.Value) any {
	n, ok := field.Interface().(NullableID)
	if !ok || n.ID == nil {
		return nil
	}
	return *n.ID
}
