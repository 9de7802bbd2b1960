// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the default merge strategy applied to imports.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the default merge
// strategy (replace, merge, append).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the importer feature to resolve the strategy when a request omits it.
package server
