// Package config loads tzboard's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tzboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Board database: ~/.local/share/tzboard/tzboard.db
//   - Log file: ~/.local/share/tzboard/tzboard.log
//   - Log level: info
//   - Tick schedule: "* * * * *" (top of every minute)
//   - Theme: Nightfox
//   - Zones: the built-in list
//
// # TOML Format
//
//	db_path = "~/.local/share/tzboard/tzboard.db"
//	log_path = "~/.local/share/tzboard/tzboard.log"
//	log_level = "info"
//	tick = "* * * * *"
//	theme = "Slate"
//	zones = ["Asia/Tokyo", "Europe/Berlin", "America/New_York"]
//
// tick accepts standard five-field cron expressions and descriptors such as
// "@every 30s". zones replaces the list new cards pick their zone from.
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors for path
// expansion failures, read errors other than os.ErrNotExist, and TOML
// parsing errors.
package config
