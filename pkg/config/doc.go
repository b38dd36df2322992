// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing. Each configuration type
// is parsed once per process and cached by type name; ResetCache clears the
// cache, which is mostly useful in tests.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
//   - ErrParsingConfig: the environment does not fit the struct.
//   - ErrLoadingEnvFile: an explicit .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
