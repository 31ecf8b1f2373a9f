package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/flagx"
)

// parseFlags overlays cfg with -d, -s and -l. Other arguments are ignored
// so the JSON loader's -c/-config can coexist.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.SeedEndpointURL, "s", cfg.SeedEndpointURL, "URL of the seed user listing")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
