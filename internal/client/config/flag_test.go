package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-d", "/tmp/u.db", "-s", "http://localhost:8080/users", "-l", "debug"},
			expected: &Config{DatabasePath: "/tmp/u.db", SeedEndpointURL: "http://localhost:8080/users", LogLevel: "debug"},
		},
		{
			name:     "unknown flags are skipped",
			args:     []string{"cmd", "-x", "1", "-c", "cfg.json", "-d=a.db"},
			expected: &Config{DatabasePath: "a.db"},
		},
		{
			name:        "missing value",
			args:        []string{"cmd", "-d"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
