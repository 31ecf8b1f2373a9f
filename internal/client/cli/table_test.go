package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
	"github.com/dmitrijs2005/gophusers/internal/client/views"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: "1", Nama: "Citra", Email: "citra@mail.com", Umur: 30, Status: true},
		{ID: "2", Nama: "Agus", Email: "agus@mail.com", Umur: 25, Status: false},
	}
}

func TestRenderTable(t *testing.T) {
	s := store.New()
	s.SetCanonical(sampleRecords())
	sorter := views.NewSorter(s)
	sorter.Sort(models.FieldUmur)

	got := renderTable(views.Compose(s), sorter, views.LabelAll)

	assert.True(t, strings.HasPrefix(got, "Filter Status: Tampilkan Semua\n"))
	assert.Contains(t, got, "Umur ▲")
	assert.Contains(t, got, "Nama ⇅")
	assert.Contains(t, got, "Status ⇅")
	assert.Contains(t, got, "25 tahun")
	assert.Contains(t, got, "Tidak Aktif")
	assert.Contains(t, got, "citra@mail.com")

	// sorted ascending by umur: Agus before Citra
	assert.Less(t, strings.Index(got, "Agus"), strings.Index(got, "Citra"))

	sorter.Sort(models.FieldUmur)
	got = renderTable(views.Compose(s), sorter, views.LabelAll)
	assert.Contains(t, got, "Umur ▼")
	assert.Less(t, strings.Index(got, "Citra"), strings.Index(got, "Agus"))
}

func TestRenderTable_Empty(t *testing.T) {
	s := store.New()
	got := renderTable(views.Compose(s), views.NewSorter(s), "bogus")

	assert.Contains(t, got, "Filter Status: bogus")
	assert.Contains(t, got, "No users to show")
}

func TestResolveFilterLabel(t *testing.T) {
	tests := map[string]string{
		"1":               views.LabelAll,
		"2":               views.LabelActive,
		"3":               views.LabelInactive,
		"aktif":           views.LabelActive,
		"TIDAK AKTIF":     views.LabelInactive,
		"tampilkan semua": views.LabelAll,
		"Inactive":        views.AliasInactive,
		"4":               "4",
	}
	for in, want := range tests {
		assert.Equal(t, want, resolveFilterLabel(in), in)
	}
}
