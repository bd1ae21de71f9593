// Package dtos holds the request bodies accepted by the HTTP layer.
package dtos

import (
	"bytes"
	"strconv"
)

// IDRef is a foreign key provided as a JSON number or a numeric string.
// A missing, null, empty or zero value leaves Set false. Anything else that
// does not parse as a positive integer marks the reference Invalid.
type IDRef struct {
	Set     bool
	Invalid bool
	Value   uint
}

func (r *IDRef) UnmarshalJSON(b []byte) error {
	*r = IDRef{}
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" || s == "0" {
		return nil
	}
	r.Set = true
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		r.Invalid = true
		return nil
	}
	r.Value = uint(n)
	return nil
}

// Ref is a convenience constructor for tests and seeders.
func Ref(id uint) IDRef {
	return IDRef{Set: id != 0, Value: id}
}
