package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	LLMProvider    string
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	LLMTemperature float32
	StoreDriver    string
	MongoURI       string
	MongoDBName    string
	DBPath         string
	CORSOrigins    []string
	// ReferenceDate is "today" or a YYYY-MM-DD date used as the prompt's current date.
	ReferenceDate string
}

// ErrMissingAPIKey is fatal at startup.
var ErrMissingAPIKey = errors.New("PROJECT_API_KEY environment variable is required")

func Load() (AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	provider := strings.ToLower(get("LLM_PROVIDER", "gemini"))
	defModel := "gemini-2.5-flash"
	if provider == "openai" {
		defModel = "gpt-4o-mini"
	}
	cfg := AppConfig{
		Port:          get("PORT", "8000"),
		LLMProvider:   provider,
		LLMEndpoint:   get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:     get("PROJECT_API_KEY", os.Getenv("LLM_API_KEY")),
		LLMModel:      get("LLM_MODEL", defModel),
		StoreDriver:   strings.ToLower(get("STORE_DRIVER", "mongo")),
		MongoURI:      get("MONGO_URI", ""),
		MongoDBName:   get("MONGO_DB_NAME", ""),
		DBPath:        get("DB_PATH", "planner.db"),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "http://localhost:3000")),
		ReferenceDate: get("PLANNER_REFERENCE_DATE", "2025-10-13"),
	}

	temp, err := strconv.ParseFloat(get("LLM_TEMPERATURE", "0.3"), 32)
	if err != nil {
		return cfg, fmt.Errorf("LLM_TEMPERATURE: %w", err)
	}
	cfg.LLMTemperature = float32(temp)

	if _, err := cfg.ReferenceClock(); err != nil {
		return cfg, err
	}
	if cfg.LLMAPIKey == "" && cfg.LLMProvider != "mock" {
		log.Printf("[cfg] ERROR: PROJECT_API_KEY not found in environment variables.")
		return cfg, ErrMissingAPIKey
	}
	if cfg.StoreDriver == "mongo" && (cfg.MongoURI == "" || cfg.MongoDBName == "") {
		log.Printf("[cfg] ERROR: MONGO_URI or MONGO_DB_NAME not found in environment variables.")
	}

	log.Printf("[cfg] %+v", cfg.redacted())
	return cfg, nil
}

// ReferenceClock returns the function the planner uses for "today".
func (c AppConfig) ReferenceClock() (func() time.Time, error) {
	if strings.EqualFold(c.ReferenceDate, "today") {
		return func() time.Time { return time.Now() }, nil
	}
	d, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return nil, fmt.Errorf("PLANNER_REFERENCE_DATE must be YYYY-MM-DD or \"today\": %w", err)
	}
	return func() time.Time { return d }, nil
}

func (c AppConfig) redacted() AppConfig {
	if c.LLMAPIKey != "" {
		c.LLMAPIKey = "***"
	}
	if c.MongoURI != "" {
		c.MongoURI = "***"
	}
	return c
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
