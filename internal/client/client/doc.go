// Package client contains the client's outward-facing plumbing.
//
// It provides:
//  1. The SeedClient contract for the remote user listing that seeds an
//     empty local store, and an HTTP implementation (HTTPSeedClient).
//  2. Local database bootstrap (InitDatabase, RunMigrations): a SQLite file
//     opened through modernc.org/sqlite with embedded goose migrations.
//  3. Sentinel errors shared by the services: ErrFetchFailure,
//     ErrPersistFailure, ErrParseFailure. Match them with errors.Is.
package client
