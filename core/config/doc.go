// Package config assembles the application configuration.
//
// Configuration is loaded from environment variables, optionally overlaid by a
// .env file (via godotenv). Defaults are declared directly on the partial
// config structs using `default` tags and registered in Viper by reflection,
// so each package owns its own configuration shape.
//
// Environment variables map to nested keys by underscore substitution,
// e.g. SERVER_PORT -> server.port, LOGBOOK_MERGE_MODE -> logbook.merge_mode.
package config
