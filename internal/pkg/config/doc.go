// Package config loads and validates the article service configuration.
//
// Settings come from a YAML file read with viper and are then overlaid with
// environment variables (ADMINS, APP_KEY, DB_DSN, ...) parsed with caarlos0/env.
// Each settings struct validates itself before it is handed to a constructor.
package config
