package views

import (
	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
)

// Filter labels. The Indonesian labels are the ones offered by the UI; the
// English ones are accepted as aliases.
const (
	LabelAll      = "Tampilkan Semua"
	LabelActive   = "Aktif"
	LabelInactive = "Tidak Aktif"

	AliasAll      = "show all"
	AliasActive   = "active"
	AliasInactive = "inactive"
)

// FilterLabels lists the labels offered to the user, in menu order.
var FilterLabels = []string{LabelAll, LabelActive, LabelInactive}

// FilterRecords returns the records selected by label. Unknown labels select
// nothing.
func FilterRecords(label string, records []models.Record) []models.Record {
	keep := predicate(label)
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func predicate(label string) func(models.Record) bool {
	switch label {
	case LabelAll, AliasAll:
		return func(models.Record) bool { return true }
	case LabelActive, AliasActive:
		return func(r models.Record) bool { return r.Status }
	case LabelInactive, AliasInactive:
		return func(r models.Record) bool { return !r.Status }
	default:
		return func(models.Record) bool { return false }
	}
}

// Filter is the filter engine bound to a store.
type Filter struct {
	store *store.Store
	label string
}

func NewFilter(s *store.Store) *Filter {
	return &Filter{store: s, label: LabelAll}
}

// Label is the most recently applied label, for the status indicator.
func (f *Filter) Label() string { return f.label }

// Apply filters the current canonical collection and stores the result as
// both the filtered and the sorted view. Any previous ordering is dropped.
func (f *Filter) Apply(label string) []models.Record {
	f.label = label
	result := FilterRecords(label, f.store.Canonical())
	f.store.SetFiltered(result)
	f.store.SetSorted(result)
	return result
}
