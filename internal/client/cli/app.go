package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/client/client"
	"github.com/dmitrijs2005/gophusers/internal/client/config"
	"github.com/dmitrijs2005/gophusers/internal/client/metrics"
	"github.com/dmitrijs2005/gophusers/internal/client/notify"
	"github.com/dmitrijs2005/gophusers/internal/client/services"
	"github.com/dmitrijs2005/gophusers/internal/client/store"
	"github.com/dmitrijs2005/gophusers/internal/client/views"
	"github.com/dmitrijs2005/gophusers/internal/filex"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/gofrs/flock"
	"golang.org/x/term"
)

// ErrSessionLocked is returned when another client holds the database.
var ErrSessionLocked = errors.New("database is in use by another session")

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	lock    *flock.Flock
	records *store.Store
	filter  *views.Filter
	sorter  *views.Sorter
	gateway *services.Gateway
	editor  *services.Editor
	metrics *metrics.Recorder
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database named by c and wires every component to
// one Store. Only one App may use a database file at a time.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	seed := client.NewHTTPSeedClient(c.SeedEndpointURL, nil)
	return newApp(ctx, c, log, seed, os.Stdin, os.Stdout, styled)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, seed client.SeedClient, in io.Reader, out io.Writer, styled bool) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	lock := flock.New(c.DatabasePath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock database: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrSessionLocked, c.DatabasePath)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		_ = lock.Unlock()
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	var notifier notify.Notifier = notify.NewConsole(out, styled)
	if !styled {
		notifier = notify.Multi{notifier, notify.NewLog(log)}
	}

	records := store.New()
	m := metrics.NewRecorder()
	gateway := services.NewGateway(db, seed, records, notifier, log.With("component", "gateway"), m)
	editor := services.NewEditor(gateway, records, nil, notifier, log.With("component", "editor"), m)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		lock:    lock,
		records: records,
		filter:  views.NewFilter(records),
		sorter:  views.NewSorter(records),
		gateway: gateway,
		editor:  editor,
		metrics: m,
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

// Run loads the records and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	// failures are already reported by the gateway; the session stays usable
	_ = a.gateway.Load(ctx)

	fmt.Fprintln(a.out, "Users client (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the database and the session lock.
func (a *App) Close() error {
	err := a.db.Close()
	if uerr := a.lock.Unlock(); uerr != nil {
		err = errors.Join(err, uerr)
	}
	return err
}

func (a *App) getStatus() string {
	s := "filter: " + a.filter.Label()
	if st := a.sorter.State(); st.Key != "" {
		s += fmt.Sprintf(" | sort: %s %s", st.Key, st.Direction)
	}
	return s
}
