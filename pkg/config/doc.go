// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env bootstrap, and caches each
// successfully loaded configuration type so it is parsed only once per
// process.
//
// # Usage
//
//	type ConfirmConfig struct {
//		TokenSalt    string   `env:"CONFIRM_TOKEN_SALT,required"`
//		DropUserKeys []string `env:"CONFIRM_DROP_USER_KEYS" envDefault:"password_hash"`
//	}
//
//	var cfg ConfirmConfig
//	config.MustLoad(&cfg)
//
// Sentinel errors (ErrParsingConfig, ErrNilPointer) can be matched with
// errors.Is. Use Reset in tests that change the environment between
// loads.
package config
