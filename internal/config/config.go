package config

import "github.com/arkadys/soundclub/internal/api"

// Config holds runtime settings for the SoundClub CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api
//     prefix.
//   - SessionDBPath: path of the SQLite file holding the persisted session.
type Config struct {
	ServerBaseURL string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = api.DefaultBaseURL
	c.SessionDBPath = "soundclub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
