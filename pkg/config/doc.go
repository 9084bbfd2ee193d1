// Package config loads service configuration from environment variables.
//
// Values are parsed into tagged structs by github.com/caarlos0/env/v11.
// The first Load also reads a .env file from the working directory through
// github.com/joho/godotenv, so local development needs no exported
// variables. Each configuration type is parsed once per process and cached.
//
//	var app config.App
//	config.MustLoad(&app)
//
//	var srv httpserver.Config
//	config.MustLoad(&srv)
//
// Tests that change the environment call ResetCache to force a re-parse.
// LoadEnv reads additional .env files, such as a per-environment override.
package config
