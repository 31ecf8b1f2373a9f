// Package localstorage is the client's durable key/value store.
//
// It plays the role a browser's localStorage plays for a web client: a flat
// table of string keys to opaque byte values, overwritten in full on every
// Set. The record collection lives under a single key as a JSON array.
//
// Typical usage:
//
//	repo := localstorage.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "data", payload)
//	payload, _ := repo.Get(ctx, "data") // nil, nil when absent
package localstorage
