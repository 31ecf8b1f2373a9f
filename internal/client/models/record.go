// Package models defines the user record handled by the client and the
// helpers used to order records by column.
package models

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field names a record column. Values match the JSON keys of Record.
type Field string

const (
	FieldID     Field = "id"
	FieldNama   Field = "nama"
	FieldEmail  Field = "email"
	FieldUmur   Field = "umur"
	FieldStatus Field = "status"
)

// Columns lists the table columns in display order.
var Columns = []Field{FieldNama, FieldEmail, FieldUmur, FieldStatus}

// Record is a single user row.
type Record struct {
	ID     string  `json:"id"`
	Nama   string  `json:"nama"`
	Email  string  `json:"email"`
	Umur   float64 `json:"umur"`
	Status bool    `json:"status"`
}

// UnmarshalJSON accepts the id either as a string or as a bare JSON number.
// Batches seeded by older clients stored the numeric remote id.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)

	raw := bytes.TrimSpace(aux.ID)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		r.ID = ""
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &r.ID); err != nil {
			return fmt.Errorf("record id: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("record id: %w", err)
		}
		r.ID = n.String()
	}
	return nil
}

// StatusLabel is the badge text shown for the status column.
func (r Record) StatusLabel() string {
	if r.Status {
		return "Aktif"
	}
	return "Tidak Aktif"
}

// UmurLabel renders the age the way the table shows it.
func (r Record) UmurLabel() string {
	return strconv.FormatFloat(r.Umur, 'f', -1, 64) + " tahun"
}

// Compare orders a and b by field f: numerically for umur, lexicographically
// for string columns and false before true for status. Unknown fields
// compare equal.
func Compare(a, b Record, f Field) int {
	switch f {
	case FieldID:
		return cmp.Compare(a.ID, b.ID)
	case FieldNama:
		return cmp.Compare(a.Nama, b.Nama)
	case FieldEmail:
		return cmp.Compare(a.Email, b.Email)
	case FieldUmur:
		return cmp.Compare(a.Umur, b.Umur)
	case FieldStatus:
		return compareBool(a.Status, b.Status)
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Clone returns an independent copy of records. A nil input yields an empty,
// non-nil slice so it always serializes as a JSON array.
func Clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
