package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	DatabasePath    string `json:"database_path"`
	SeedEndpointURL string `json:"seed_endpoint_url"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Without the flag
// it does nothing.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SeedEndpointURL != "" {
		cfg.SeedEndpointURL = jc.SeedEndpointURL
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
