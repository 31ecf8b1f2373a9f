package services

import (
	"context"

	"github.com/dmitrijs2005/gophusers/internal/client/metrics"
	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/notify"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/google/uuid"
)

// IDGenerator returns a process-unique record id.
type IDGenerator func() string

// Editor performs add/edit/delete on the canonical collection. Every
// operation rebuilds the whole next collection and commits it through the
// gateway; derived views are left as they are.
type Editor struct {
	gateway  *Gateway
	records  *store.Store
	newID    IDGenerator
	notifier notify.Notifier
	log      logging.Logger
	metrics  *metrics.Recorder
}

// NewEditor wires an Editor. A nil newID uses random UUIDs.
func NewEditor(g *Gateway, records *store.Store, newID IDGenerator, notifier notify.Notifier, log logging.Logger, m *metrics.Recorder) *Editor {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Editor{gateway: g, records: records, newID: newID, notifier: notifier, log: log, metrics: m}
}

// Add appends in under a fresh id and returns the stored record.
func (e *Editor) Add(ctx context.Context, in models.Record) (models.Record, error) {
	rec := in
	rec.ID = e.newID()

	next := append(e.records.Canonical(), rec)
	if err := e.commit(ctx, metrics.OpAdd, next, MsgAdded, MsgAddFailed); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

// Edit replaces the record whose id equals rec.ID, keeping its position. An
// unknown id changes nothing but is still committed and reported as success.
func (e *Editor) Edit(ctx context.Context, rec models.Record) error {
	current := e.records.Canonical()
	next := make([]models.Record, len(current))
	for i, r := range current {
		if r.ID == rec.ID {
			next[i] = rec
			continue
		}
		next[i] = r
	}
	return e.commit(ctx, metrics.OpEdit, next, MsgUpdated, MsgUpdateFailed)
}

// Delete removes the record with id. An unknown id is a no-op.
func (e *Editor) Delete(ctx context.Context, id string) error {
	current := e.records.Canonical()
	next := make([]models.Record, 0, len(current))
	for _, r := range current {
		if r.ID != id {
			next = append(next, r)
		}
	}
	return e.commit(ctx, metrics.OpDelete, next, MsgDeleted, MsgDeleteFailed)
}

func (e *Editor) commit(ctx context.Context, op string, next []models.Record, okMsg, failMsg string) error {
	err := e.gateway.Commit(ctx, next)
	e.metrics.Observe(op, err)
	if err != nil {
		e.log.Error(ctx, "record change not saved", "operation", op, "error", err)
		e.notifier.Failure(ctx, failMsg)
		return err
	}
	e.log.Debug(ctx, "record change saved", "operation", op, "count", len(next))
	e.notifier.Success(ctx, okMsg)
	return nil
}
