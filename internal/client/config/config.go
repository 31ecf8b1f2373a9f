package config

// Config holds runtime settings for the users client.
type Config struct {
	// DatabasePath is the SQLite file backing local storage.
	DatabasePath string
	// SeedEndpointURL is the user listing fetched when local storage is empty.
	SeedEndpointURL string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "users.db"
	c.SeedEndpointURL = "https://api.github.com/users"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
// Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
