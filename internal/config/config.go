package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port            string
	DBDSN           string
	JWTSecret       string
	UploadDir       string
	PublicBaseURL   string
	AllowedOrigins  []string
	LogFile         string
	LogLevel        string
	PasswordHashing string // plain | bcrypt
}

func Load() (Config, error) {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	port := getEnv("PORT", "4000")
	cfg := Config{
		Port:            port,
		DBDSN:           getEnv("DB_DSN", "trendyshop.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		UploadDir:       getEnv("UPLOAD_DIR", "./upload/images"),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		AllowedOrigins:  splitList(os.Getenv("ALLOWED_ORIGINS")),
		LogFile:         os.Getenv("LOG_FILE"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		PasswordHashing: strings.ToLower(getEnv("PASSWORD_HASHING", "plain")),
	}
	if cfg.JWTSecret == "" {
		return cfg, ErrMissingSecret
	}

	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s PUBLIC_BASE_URL=%s LOG_FILE=%s PASSWORD_HASHING=%s JWT_SECRET=<redacted>",
		cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.PublicBaseURL, cfg.LogFile, cfg.PasswordHashing)
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
