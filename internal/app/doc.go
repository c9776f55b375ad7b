// Package app provides the orchestration layer for the showroom.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// catalog store and the UI. It is the composition root where every dependency
// is initialized and connected.
//
// # Startup
//
//  1. Resolve: load config.toml and prefs.toml, apply --catalog/--platform
//  2. Build the zap logger (file output, or no-op when log_file is empty)
//  3. Load the catalog (file or built-in) into a state.Store
//  4. Start the catalog watcher when the catalog comes from a file
//  5. Run the TUI; quitting cancels the watcher
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> Resolve()             config + prefs + flags
//	       ├─────> logging.New()         zap logger
//	       ├─────> catalog.Load()        initial catalog
//	       ├─────> state.Store.Update()  version 1
//	       └─────> errgroup
//	                 ├─> CatalogWatcher.Run()  fsnotify → store.Update()
//	                 └─> ui.Run()              polls store.Version()
//
// # Platform Resolution
//
// The platform (web or native) decides every carousel's input modality. The
// --platform flag wins over prefs.toml, which wins over config.toml. The UI
// writes the platform back to prefs when the user toggles it.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config TOML or an unknown --platform value
//   - Logger construction failure
//   - Initial catalog load failure
//   - Catalog directory cannot be watched
//
// Recoverable errors (logged, previous catalog kept):
//   - Catalog reload failures after an edit, retried with backoff
package app
