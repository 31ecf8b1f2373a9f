package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/views"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	activeStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	inactiveStyle = cellStyle.Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// tableColumns are the rendered columns; the id column is last.
var tableColumns = append(append([]models.Field{}, models.Columns...), models.FieldID)

const statusColumn = 3

func indicator(d views.Direction) string {
	switch d {
	case views.Ascending:
		return "▲"
	case views.Descending:
		return "▼"
	default:
		return "⇅"
	}
}

func headerLabel(f models.Field) string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderTable draws the filter status line and the records table, with a
// sort indicator next to every header.
func renderTable(records []models.Record, sorter *views.Sorter, filterLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Filter Status: %s\n", filterLabel)

	if len(records) == 0 {
		b.WriteString(dimStyle.Render("No users to show"))
		b.WriteString("\n")
		return b.String()
	}

	headers := make([]string, len(tableColumns))
	for i, f := range tableColumns {
		headers[i] = headerLabel(f) + " " + indicator(sorter.Indicator(f))
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{r.Nama, r.Email, r.UmurLabel(), r.StatusLabel(), r.ID}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn && row >= 0 && row < len(records) {
				if records[row].Status {
					return activeStyle
				}
				return inactiveStyle
			}
			return cellStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
