package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/views"
)

var (
	ErrUnknownRecord = errors.New("no user with this id")
	ErrUnknownColumn = errors.New("unknown column")
	ErrCancelled     = errors.New("cancelled")
)

// List prints the composed view: sorted, else filtered, else canonical.
func (a *App) List(ctx context.Context) error {
	fmt.Fprint(a.out, renderTable(views.Compose(a.records), a.sorter, a.filter.Label()))
	return nil
}

// Filter applies a status label given either by name or by its menu number.
// Without arguments the menu is shown.
func (a *App) Filter(ctx context.Context, args []string) error {
	choice := strings.Join(args, " ")
	if choice == "" {
		for i, l := range views.FilterLabels {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, l)
		}
		var err error
		choice, err = GetSimpleText(a.reader, "Filter by status", a.out)
		if err != nil {
			return err
		}
	}

	a.filter.Apply(resolveFilterLabel(choice))
	a.log.Debug(ctx, "filter applied", "label", a.filter.Label())
	return a.List(ctx)
}

func resolveFilterLabel(choice string) string {
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(views.FilterLabels) {
		return views.FilterLabels[n-1]
	}
	for _, l := range views.FilterLabels {
		if strings.EqualFold(l, choice) {
			return l
		}
	}
	return strings.ToLower(choice)
}

// Sort orders the current view by a column; repeating it flips the direction.
func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: sort <nama|email|umur|status|id>")
		return ErrUnknownColumn
	}
	key := models.Field(strings.ToLower(args[0]))
	if !isColumn(key) {
		fmt.Fprintf(a.out, "Unknown column: %s\n", args[0])
		return fmt.Errorf("%w: %s", ErrUnknownColumn, args[0])
	}

	a.sorter.Sort(key)
	st := a.sorter.State()
	a.log.Debug(ctx, "sort applied", "key", st.Key, "direction", st.Direction)
	return a.List(ctx)
}

func isColumn(f models.Field) bool {
	for _, c := range tableColumns {
		if c == f {
			return true
		}
	}
	return false
}

// Add reads the user form and appends the new record.
func (a *App) Add(ctx context.Context) error {
	fmt.Fprintln(a.out, "Add user")
	in, err := readForm(a.reader, a.out, models.Record{})
	if err != nil {
		return err
	}
	rec, err := a.editor.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ID:", rec.ID)
	return nil
}

// Edit reads the form pre-filled with the record's current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	current, err := a.pickRecord(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Edit user (empty input keeps the current value)")
	rec, err := readForm(a.reader, a.out, current)
	if err != nil {
		return err
	}
	return a.editor.Edit(ctx, rec)
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	current, err := a.pickRecord(args)
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s (%s)?", current.Nama, current.ID), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return a.editor.Delete(ctx, current.ID)
}

// Reset clears local storage and loads again, which seeds from the remote
// endpoint.
func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Clear local storage and fetch users again?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	if err := a.gateway.Reset(ctx); err != nil {
		return err
	}
	return a.gateway.Load(ctx)
}

// Stats prints operation counters.
func (a *App) Stats(ctx context.Context) error {
	_, err := a.metrics.WriteTo(a.out)
	return err
}

// pickRecord finds the canonical record named by args[0], prompting for the
// id when none was given.
func (a *App) pickRecord(args []string) (models.Record, error) {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		id, err = GetSimpleText(a.reader, "User ID", a.out)
		if err != nil {
			return models.Record{}, err
		}
	}

	for _, r := range a.records.Canonical() {
		if r.ID == id {
			return r, nil
		}
	}
	fmt.Fprintf(a.out, "No user with id %q\n", id)
	return models.Record{}, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
}
