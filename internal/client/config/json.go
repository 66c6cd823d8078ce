package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sustena/console/internal/flagx"
	"github.com/sustena/console/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "60s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL           string         `json:"base_url"`
	StateDBPath       string         `json:"state_db_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	ResendCooldown    timex.Duration `json:"resend_cooldown"`
	DirectoryCacheTTL timex.Duration `json:"directory_cache_ttl"`
	BypassHeaderName  string         `json:"bypass_header_name"`
	BypassHeaderValue string         `json:"bypass_header_value"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies fields that are present in the file into the provided Config;
//     keys the file omits keep their earlier values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.ResendCooldown.Duration != 0 {
		cfg.ResendCooldown = time.Duration(jc.ResendCooldown.Duration)
	}
	if jc.DirectoryCacheTTL.Duration != 0 {
		cfg.DirectoryCacheTTL = time.Duration(jc.DirectoryCacheTTL.Duration)
	}
	if jc.BypassHeaderName != "" {
		cfg.BypassHeaderName = jc.BypassHeaderName
	}
	if jc.BypassHeaderValue != "" {
		cfg.BypassHeaderValue = jc.BypassHeaderValue
	}
}
