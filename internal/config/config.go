package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	TLSCert           string
	TLSKey            string
	TokenKey          string
	AdminLogin        string
	AdminPasswordHash string
	RateLimit         float64
	RateBurst         int
	CORSOrigin        string
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the given .env files (default ".env") into the environment
// without overriding variables that are already set, then builds Config.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg := Config{
		Addr:              getenv("ADDR", ":8080"),
		TLSCert:           os.Getenv("TLS_CERT"),
		TLSKey:            os.Getenv("TLS_KEY"),
		TokenKey:          os.Getenv("TOKEN_KEY"),
		AdminLogin:        getenv("ADMIN_LOGIN", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CORSOrigin:        getenv("CORS_ORIGIN", "*"),
	}
	if cfg.TokenKey == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH environment variable is not set")
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(getenv("RATE_LIMIT", "1"), 64); err != nil || cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT must be a positive number")
	}
	if cfg.RateBurst, err = strconv.Atoi(getenv("RATE_BURST", "3")); err != nil || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_BURST must be a positive integer")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
