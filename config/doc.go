// Package config loads service configuration from YAML files, .env files,
// and environment variables via viper.
//
// Services embed ServiceConfig in their own config struct and call
// LoadConfig; file resolution searches the conventional cmd/<service>/ and
// config/ locations so binaries work from the repo root or their own
// directory.
package config
