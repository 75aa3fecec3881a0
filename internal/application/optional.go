package application

import "encoding/json"

// OptionalFloat distinguishes a JSON field that was omitted from one
// that was explicitly null: omitted leaves Set false, null sets Set
// with a nil Value. Partial updates need the distinction because null
// clears a stored value while omission leaves it untouched.
type OptionalFloat struct {
	Set   bool
	Value *float64
}

func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// OptionalString is the string counterpart of OptionalFloat.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
