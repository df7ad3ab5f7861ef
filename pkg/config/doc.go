// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag driven parsing. Errors are
// returned joined with the package sentinels ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer so callers can test them with
// errors.Is.
package config
