package config

import "time"

// Config holds runtime settings for the NoteCompass client.
//
// Fields:
//   - APIBaseURL: base URL of the NoteCompass HTTP API.
//   - RequestTimeout: per-request bound; zero disables the timeout, which
//     matches the upstream behavior of waiting indefinitely.
//   - SessionDBPath: path of the local sqlite file holding the session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 0
	c.SessionDBPath = "notecompass.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
