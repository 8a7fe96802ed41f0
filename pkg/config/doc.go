// Package config loads typed configuration structs from environment variables
// (github.com/caarlos0/env) with optional dotenv files (github.com/joho/godotenv).
//
// Each formkit package that needs settings exposes a Config struct with env
// tags; the demo binary composes them and loads each with Load.
package config
