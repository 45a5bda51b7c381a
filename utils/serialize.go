package utils

import "time"

// WireVersion identifies the field-naming contract of the row wire form.
// Field sets are declared explicitly per view against this version rather
// than reflected from model structs, so renaming an internal field cannot
// silently change the wire format.
const WireVersion = "v1"

// DateFormat is the wire rendering for calendar dates, in requests,
// query parameters and serialized rows alike.
const DateFormat = "2006-01-02"

// Field is the wire identity of one result column, rendered as
// "Entity.column" (e.g. "Room.number").
type Field struct {
	Entity string
	Column string
}

func (f Field) Key() string {
	return f.Entity + "." + f.Column
}

// SerializeRows converts query result rows into the canonical wire form: one
// object per row keyed by Field.Key, in query result order. Values pass
// through untouched except calendar dates, which render as YYYY-MM-DD.
// Serialization is deterministic: the same rows with the same field order
// always produce the same output.
func SerializeRows(fields []Field, rows [][]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]any, len(fields))
		for i, f := range fields {
			if i >= len(row) {
				break
			}
			obj[f.Key()] = wireValue(row[i])
		}
		out = append(out, obj)
	}
	return out
}

func wireValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(DateFormat)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(DateFormat)
	default:
		return v
	}
}
