package models

import "github.com/tidwall/gjson"

// RawItem is one upstream item: a tree-shaped, dynamically-keyed record
// with no fixed schema. Alternate key paths encode the same semantic
// value depending on the upstream surface and locale, so lookups go
// through ordered candidate path lists rather than typed structs.
// Absent paths resolve to the zero Result, never a panic.
type RawItem struct {
	gjson.Result
}

func RawItemFromJSON(data string) RawItem {
	return RawItem{gjson.Parse(data)}
}

// First returns the first candidate path resolving to a non-empty
// value, in table order.
func (r RawItem) First(paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.String() != "" {
			return v
		}
	}
	return gjson.Result{}
}
