// Package config loads configuration structs from environment variables.
//
// Fields are declared with `env` tags understood by github.com/caarlos0/env;
// a .env file in the working directory is loaded once per process via
// github.com/joho/godotenv before the first parse. Each configuration type
// is parsed once and cached, so repeated Load calls for the same type are
// cheap and return identical values.
//
//	type DecodeConfig struct {
//	    TextLimit int64 `env:"MULTIFORM_TEXT_LIMIT" envDefault:"1048576"`
//	    MaxParts  int   `env:"MULTIFORM_MAX_PARTS" envDefault:"1000"`
//	}
//
//	var cfg DecodeConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
