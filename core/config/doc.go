// Package config aggregates the partial configurations of all core packages
// (server, storage, logger, database) into one application Config.
//
// Values are resolved in three layers:
//  1. 'default' struct tags, registered through reflection
//  2. a .env file, when present (godotenv)
//  3. environment variables, mapped to nested keys (SERVER_PORT -> server.port)
package config
