package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Addr              string
	DbDsn             string
	LegacyDbDsn       string
	JwtSecret         string
	JwtAccessMinutes  int
	AllowedOriginsRaw string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		DbDsn:             os.Getenv("DB_DSN"),
		LegacyDbDsn:       os.Getenv("LEGACY_DB_DSN"),
		JwtSecret:         os.Getenv("JWT_SECRET"),
		JwtAccessMinutes:  getEnvInt("JWT_ACCESS_MINUTES", 480),
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),
	}

	missing := []string{}
	if cfg.DbDsn == "" {
		missing = append(missing, "DB_DSN")
	}
	if cfg.JwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// AllowedOrigins splits the raw comma-separated origin list. Empty means
// allow any origin, which suits the kiosk/mobile deployment.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOriginsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
