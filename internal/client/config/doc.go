// Package config loads runtime configuration for the users client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database
//	-s string   URL of the seed user listing
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_path": "users.db",
//	  "seed_endpoint_url": "https://api.github.com/users",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their previous value. Read or parse
// errors panic, since the client cannot start without a usable config.
package config
