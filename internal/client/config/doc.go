// Package config loads runtime configuration for the console CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path of the SQLite session state file
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://console.example.com/api",
//	  "state_db_path": "/var/lib/console/state.db",
//	  "request_timeout": "10s",
//	  "resend_cooldown": "60s",
//	  "directory_cache_ttl": "30s"
//	}
//
// Primary API
//
//   - type Config                     — holds the transport, storage and timing settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
