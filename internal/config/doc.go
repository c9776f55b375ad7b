// Package config loads the showroom configuration file.
//
// # Overview
//
// Configuration is a small TOML file that picks the platform flavour, the
// catalog source, the log destination and the default carousel options. Every
// field is optional and a missing file is not an error.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/showroom/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, blank or invalid, use defaults
//
// # TOML Format
//
//	platform = "web"          # web | native
//	catalog = ""              # empty uses the built-in catalog
//	log_file = "~/.local/state/showroom/showroom.log"
//	log_level = "info"
//
//	[carousel]
//	show_arrows = true
//	show_indicators = true
//	auto_advance = true
//	auto_advance_interval_ms = 3000
//
// An explicit empty log_file disables logging. Tilde expansion is performed
// for catalog and log_file.
//
// # Platforms
//
// Platform maps onto a carousel input modality: web uses the transform
// adapter (arrows, indicators, auto-advance) and native uses the scroll
// adapter (paging scroll view, no auto-advance).
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
package config
