package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the gateway.
type Config struct {
	Port            string
	GeminiAPIKey    string
	GeminiModel     string
	MaxSpecsLength  int
	SearchGrounding bool
	MaxLogSizeMB    int64
	MaxLogBackups   int
}

// Load initializes the configuration.
// It tries to read a .env file and falls back to the process environment.
// A missing GEMINI_API_KEY is not fatal here: the pipeline reports it as a
// configuration error per request, so the server still boots and answers
// health checks.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxSpecsLength:  getEnvInt("MAX_SPECS_LENGTH", 2000),
		SearchGrounding: getEnvBool("GEMINI_SEARCH_GROUNDING", false),
		MaxLogSizeMB:    int64(getEnvInt("GATEWAY_LOG_MAX_MB", 10)),
		MaxLogBackups:   getEnvInt("GATEWAY_LOG_BACKUPS", 3),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set. Prediction requests will fail with a configuration error.")
	} else {
		log.Printf("GEMINI_API_KEY=%s", mask(cfg.GeminiAPIKey))
	}
	log.Printf("GEMINI_MODEL=%s MAX_SPECS_LENGTH=%d SEARCH_GROUNDING=%v", cfg.GeminiModel, cfg.MaxSpecsLength, cfg.SearchGrounding)

	return cfg
}

// mask hides a secret value, showing only the last 4 characters.
func mask(v string) string {
	if len(v) <= 4 {
		return "***"
	}
	return "***" + v[len(v)-4:]
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid integer for %s (%q), using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid boolean for %s (%q), using default %v", key, v, fallback)
		return fallback
	}
	return b
}
