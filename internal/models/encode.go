package models

import "encoding/json"

// EncodeList serializes a list-valued field for storage in a text column.
// A nil slice encodes as "[]" so empty and absent look the same on disk.
func EncodeList[T any](items []T) string {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeList parses a stored list column. Malformed or empty text yields an
// empty list rather than an error: a corrupt column must never take down a
// read path.
func DecodeList[T any](raw string) []T {
	if raw == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}
