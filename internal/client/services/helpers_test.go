package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophusers/internal/client/client"
	"github.com/dmitrijs2005/gophusers/internal/client/metrics"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSeed struct {
	users []client.RemoteUser
	err   error
	calls int
}

func (f *fakeSeed) FetchUsers(ctx context.Context) ([]client.RemoteUser, error) {
	f.calls++
	return f.users, f.err
}

type note struct {
	ok  bool
	msg string
}

type fakeNotifier struct {
	notes []note
}

func (n *fakeNotifier) Success(_ context.Context, msg string) {
	n.notes = append(n.notes, note{ok: true, msg: msg})
}

func (n *fakeNotifier) Failure(_ context.Context, msg string) {
	n.notes = append(n.notes, note{ok: false, msg: msg})
}

func (n *fakeNotifier) last() note {
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

// ---- fixture ----

type fixture struct {
	db       *sql.DB
	seed     *fakeSeed
	records  *store.Store
	notifier *fakeNotifier
	metrics  *metrics.Recorder
	gateway  *Gateway
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newFixture(t *testing.T, db *sql.DB, seed *fakeSeed) *fixture {
	t.Helper()
	if seed == nil {
		seed = &fakeSeed{}
	}
	f := &fixture{
		db:       db,
		seed:     seed,
		records:  store.New(),
		notifier: &fakeNotifier{},
		metrics:  metrics.NewRecorder(),
	}
	f.gateway = NewGateway(db, seed, f.records, f.notifier, logging.Discard(), f.metrics)
	return f
}

func storedValue(t *testing.T, db *sql.DB, key string) (string, bool) {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func putValue(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO storage(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	require.NoError(t, err)
}

func dropStorage(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`DROP TABLE storage`)
	require.NoError(t, err)
}
