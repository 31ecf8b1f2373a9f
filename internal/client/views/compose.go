package views

import (
	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
)

// Compose returns the view to render: sorted, then filtered, then
// canonical, whichever is first non-empty.
func Compose(s *store.Store) []models.Record {
	if sorted := s.Sorted(); len(sorted) > 0 {
		return sorted
	}
	if filtered := s.Filtered(); len(filtered) > 0 {
		return filtered
	}
	return s.Canonical()
}
