// Package store holds the in-memory record collections of a session.
//
// A Store keeps three independent sequences: the canonical collection
// (the persisted source of truth), a filtered subset and a sorted
// projection. Each setter replaces its sequence wholesale. Nothing is
// recomputed automatically: after SetCanonical the filtered and sorted
// sequences keep whatever they held until a filter or sort is triggered
// again.
//
// A Store is not safe for concurrent use. The client drives it from a
// single REPL loop.
package store

import "github.com/dmitrijs2005/gophusers/internal/client/models"

type Store struct {
	canonical []models.Record
	filtered  []models.Record
	sorted    []models.Record
}

// New returns a Store with all three sequences empty.
func New() *Store {
	return &Store{
		canonical: []models.Record{},
		filtered:  []models.Record{},
		sorted:    []models.Record{},
	}
}

// Canonical returns a copy of the canonical collection.
func (s *Store) Canonical() []models.Record { return models.Clone(s.canonical) }

// Filtered returns a copy of the filtered view.
func (s *Store) Filtered() []models.Record { return models.Clone(s.filtered) }

// Sorted returns a copy of the sorted view.
func (s *Store) Sorted() []models.Record { return models.Clone(s.sorted) }

func (s *Store) SetCanonical(records []models.Record) { s.canonical = models.Clone(records) }

func (s *Store) SetFiltered(records []models.Record) { s.filtered = models.Clone(records) }

func (s *Store) SetSorted(records []models.Record) { s.sorted = models.Clone(records) }
