package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", c.ServerBaseURL)
	assert.Equal(t, "soundclub.db", c.SessionDBPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000/api", cfg.ServerBaseURL)
	assert.Equal(t, "soundclub.db", cfg.SessionDBPath)
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url": "http://api.example:9000/api",
		"session_db_path": "custom.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://api.example:9000/api", cfg.ServerBaseURL)
		assert.Equal(t, "custom.db", cfg.SessionDBPath)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerBaseURL: "http://defaults:1234/api",
			SessionDBPath: "defaults.db",
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234/api", cfg.ServerBaseURL)
		assert.Equal(t, "defaults.db", cfg.SessionDBPath)
	})

	t.Run("absent fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"server_base_url": "http://partial:8000/api",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{SessionDBPath: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "http://partial:8000/api", cfg.ServerBaseURL)
		assert.Equal(t, "keep.db", cfg.SessionDBPath)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "http://flagged:7000/api", "-d", "flagged.db"}

	cfg := &Config{ServerBaseURL: "http://defaults:1234/api", SessionDBPath: "defaults.db"}
	parseFlags(cfg)

	assert.Equal(t, "http://flagged:7000/api", cfg.ServerBaseURL)
	assert.Equal(t, "flagged.db", cfg.SessionDBPath)
}
