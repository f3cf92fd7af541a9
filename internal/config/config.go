package config

import (
	"os"
)

type Config struct {
	AppPort     string
	DBDSN       string
	CORSOrigins string
}

func Load() Config {
	return Config{
		AppPort:     get("APP_PORT", "8080"),
		DBDSN:       must("DB_DSN"),
		CORSOrigins: get("CORS_ORIGINS", "http://127.0.0.1:3000, http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
