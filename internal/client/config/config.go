package config

import "time"

// Config holds runtime settings for the console CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including any path prefix.
//   - StateDBPath: path of the SQLite file backing the persisted session.
//   - RequestTimeout: per-request deadline for transport calls.
//   - ResendCooldown: minimum gap between verification-code resends.
//   - DirectoryCacheTTL: how long directory list results stay fresh.
//   - BypassHeaderName/BypassHeaderValue: extra header attached to every
//     request so tunnel interstitials return JSON instead of HTML.
//
// Units: all intervals are time.Duration (e.g., 60*time.Second).
type Config struct {
	BaseURL           string
	StateDBPath       string
	RequestTimeout    time.Duration
	ResendCooldown    time.Duration
	DirectoryCacheTTL time.Duration
	BypassHeaderName  string
	BypassHeaderValue string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.StateDBPath = "console.db"
	c.RequestTimeout = 10 * time.Second
	c.ResendCooldown = 60 * time.Second
	c.DirectoryCacheTTL = 30 * time.Second
	c.BypassHeaderName = "ngrok-skip-browser-warning"
	c.BypassHeaderValue = "true"
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
