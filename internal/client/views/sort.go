package views

import (
	"slices"

	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
	Unset      Direction = ""
)

// SortState is the last requested sort.
type SortState struct {
	Key       models.Field
	Direction Direction
}

// SortRecords returns a stably sorted copy of records.
func SortRecords(records []models.Record, key models.Field, dir Direction) []models.Record {
	out := models.Clone(records)
	slices.SortStableFunc(out, func(a, b models.Record) int {
		c := models.Compare(a, b, key)
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// Sorter is the sort engine bound to a store.
type Sorter struct {
	store *store.Store
	state SortState
}

func NewSorter(s *store.Store) *Sorter {
	return &Sorter{store: s, state: SortState{Direction: Ascending}}
}

func (s *Sorter) State() SortState { return s.state }

// Indicator reports the direction shown next to a column header.
func (s *Sorter) Indicator(key models.Field) Direction {
	if s.state.Key == "" || s.state.Key != key {
		return Unset
	}
	return s.state.Direction
}

// Sort orders the working set (filtered view if non-empty, else canonical)
// by key and stores it as the sorted view. Requesting the same key again
// after an ascending sort flips to descending; anything else starts
// ascending.
func (s *Sorter) Sort(key models.Field) []models.Record {
	dir := Ascending
	if s.state.Key == key && s.state.Direction == Ascending {
		dir = Descending
	}

	working := s.store.Filtered()
	if len(working) == 0 {
		working = s.store.Canonical()
	}

	result := SortRecords(working, key, dir)
	s.store.SetSorted(result)
	s.state = SortState{Key: key, Direction: dir}
	return result
}
