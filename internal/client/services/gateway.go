// Package services contains the client's data workflows: the persistence
// gateway that keeps the record store and local storage in step, and the
// record editor built on top of it.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophusers/internal/client/client"
	"github.com/dmitrijs2005/gophusers/internal/client/metrics"
	"github.com/dmitrijs2005/gophusers/internal/client/models"
	"github.com/dmitrijs2005/gophusers/internal/client/notify"
	"github.com/dmitrijs2005/gophusers/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
	"github.com/dmitrijs2005/gophusers/internal/dbx"
	"github.com/dmitrijs2005/gophusers/internal/logging"
)

// Local storage keys.
const (
	StorageKey  = "data"
	SeededAtKey = "seeded_at"
)

// Gateway synchronizes the canonical collection with local storage.
type Gateway struct {
	db       *sql.DB
	seed     client.SeedClient
	records  *store.Store
	notifier notify.Notifier
	log      logging.Logger
	metrics  *metrics.Recorder
}

func NewGateway(db *sql.DB, seed client.SeedClient, records *store.Store, notifier notify.Notifier, log logging.Logger, m *metrics.Recorder) *Gateway {
	return &Gateway{db: db, seed: seed, records: records, notifier: notifier, log: log, metrics: m}
}

func (g *Gateway) repo(db dbx.DBTX) localstorage.Repository {
	return localstorage.NewSQLiteRepository(db)
}

// Load fills the canonical collection at startup. Stored data wins; when
// there is none (absent, unreadable, or an empty batch) the seed endpoint is
// asked once and its result is written to both the store and local storage.
func (g *Gateway) Load(ctx context.Context) (err error) {
	defer func() { g.metrics.Observe(metrics.OpLoad, err) }()

	records, err := g.readStored(ctx)
	if err != nil {
		g.log.Warn(ctx, "stored data ignored", "key", StorageKey, "error", err)
	}
	if len(records) > 0 {
		g.records.SetCanonical(records)
		g.log.Info(ctx, "records loaded", "source", "storage", "count", len(records))
		g.notifier.Success(ctx, MsgLoadedFromStorage)
		return nil
	}

	return g.seedFromRemote(ctx)
}

func (g *Gateway) readStored(ctx context.Context) ([]models.Record, error) {
	raw, err := g.repo(g.db).Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return Decode(raw)
}

func (g *Gateway) seedFromRemote(ctx context.Context) (err error) {
	defer func() { g.metrics.Observe(metrics.OpSeed, err) }()

	users, err := g.seed.FetchUsers(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrFetchFailure) {
			err = fmt.Errorf("%w: %w", client.ErrFetchFailure, err)
		}
		g.log.Error(ctx, "seed fetch failed", "error", err)
		g.notifier.Failure(ctx, MsgFetchFailed)
		return err
	}

	records := FromRemote(users)
	payload, err := Encode(records)
	if err != nil {
		g.log.Error(ctx, "seed batch not persisted", "error", err)
		g.notifier.Failure(ctx, MsgFetchFailed)
		return err
	}

	err = dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := g.repo(tx)
		if err := repo.Set(ctx, StorageKey, payload); err != nil {
			return err
		}
		return repo.Set(ctx, SeededAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		err = fmt.Errorf("%w: %w", client.ErrPersistFailure, err)
		g.log.Error(ctx, "seed batch not persisted", "error", err)
		g.notifier.Failure(ctx, MsgFetchFailed)
		return err
	}

	g.records.SetCanonical(records)
	g.log.Info(ctx, "records loaded", "source", "remote", "count", len(records))
	g.notifier.Success(ctx, MsgLoadedFromAPI)
	return nil
}

// Commit overwrites local storage with next and only then makes next the
// canonical collection. On error the store is left untouched.
func (g *Gateway) Commit(ctx context.Context, next []models.Record) error {
	payload, err := Encode(next)
	if err != nil {
		return err
	}
	if err := g.repo(g.db).Set(ctx, StorageKey, payload); err != nil {
		return fmt.Errorf("%w: %w", client.ErrPersistFailure, err)
	}
	g.records.SetCanonical(next)
	return nil
}

// Reset drops the stored batch and empties the store, so the next Load
// seeds again.
func (g *Gateway) Reset(ctx context.Context) (err error) {
	defer func() { g.metrics.Observe(metrics.OpReset, err) }()

	err = dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := g.repo(tx)
		if err := repo.Delete(ctx, StorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, SeededAtKey)
	})
	if err != nil {
		g.log.Error(ctx, "reset failed", "error", err)
		g.notifier.Failure(ctx, MsgResetFailed)
		return err
	}

	empty := []models.Record{}
	g.records.SetCanonical(empty)
	g.records.SetFiltered(empty)
	g.records.SetSorted(empty)
	g.notifier.Success(ctx, MsgReset)
	return nil
}

// Encode serializes a batch for local storage.
func Encode(records []models.Record) ([]byte, error) {
	b, err := json.Marshal(models.Clone(records))
	if err != nil {
		return nil, fmt.Errorf("%w: encode records: %w", client.ErrPersistFailure, err)
	}
	return b, nil
}

// Decode parses a stored batch.
func Decode(raw []byte) ([]models.Record, error) {
	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", client.ErrParseFailure, err)
	}
	return records, nil
}

// FromRemote maps seed entries to records: login becomes nama, the profile
// URL becomes email, the numeric id is reused as umur and site_admin becomes
// status.
func FromRemote(users []client.RemoteUser) []models.Record {
	out := make([]models.Record, 0, len(users))
	for _, u := range users {
		out = append(out, models.Record{
			ID:     strconv.FormatInt(u.ID, 10),
			Nama:   u.Login,
			Email:  u.URL,
			Umur:   float64(u.ID),
			Status: u.SiteAdmin,
		})
	}
	return out
}
