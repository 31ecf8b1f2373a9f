// Package cli provides the interactive users client.
//
// It wires configuration, the local database, the record store and its
// derived views, and a REPL that stands in for the table page:
//
//   - list                  show the current view as a table
//   - filter [label]        Tampilkan Semua | Aktif | Tidak Aktif
//   - sort <column>         nama | email | umur | status | id
//   - add / edit / delete   record forms
//   - reset, stats, exit
//
// The REPL is started via App.Run(ctx), which loads the records first and
// then blocks until the user exits.
package cli
