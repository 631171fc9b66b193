package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	CORSOrigins []string
}

// LoadEnv reads .env when present and falls back to sane local defaults.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dbUser := getenvDefault("DB_USER", "root")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := getenvDefault("DB_HOST", "127.0.0.1:3306")
	dbName := getenvDefault("DB_NAME", "transportes")

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:      dbUser,
		DBPassword:  dbPassword,
		DBHost:      dbHost,
		DBName:      dbName,
		CORSOrigins: origins,
	}
}

func getenvDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
