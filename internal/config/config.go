package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Session SessionConfig
	Vault   VaultConfig
	Ai      AIConfig
	Otel    OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
	// Users maps username to a plain password or a bcrypt hash ("$2...").
	Users      map[string]string
	AdminUsers []string
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	TTL      time.Duration
	RedisURL string
}

type VaultConfig struct {
	Path string
}

// APIKey is one entry of the ordered credential rotation list.
type APIKey struct {
	Label string
	Key   string
}

type AIConfig struct {
	LLMProvider       string // "gemini"
	Keys              []APIKey
	SmallModel        string
	LargeModel        string
	AllowedModels     []string
	GenerationTimeout time.Duration
	// Zero keeps the model default.
	Temperature     float32
	MaxOutputTokens int32
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
	// SampleRatio is the fraction of root spans kept, 0..1.
	SampleRatio float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	small := getEnv("MODEL_SMALL", "gemini-2.5-flash")
	large := getEnv("MODEL_LARGE", "gemini-2.5-pro")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "default_secret"),
			TokenExpiry: getEnvAsDuration("TOKEN_EXPIRY", 12*time.Hour),
			Users:       ParseUsers(getEnv("APP_USERS", "")),
			AdminUsers:  splitList(getEnv("ADMIN_USERS", "")),
		},
		Session: SessionConfig{
			Store:    getEnv("SESSION_STORE", "memory"),
			TTL:      getEnvAsDuration("SESSION_TTL", 8*time.Hour),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Vault: VaultConfig{
			Path: getEnv("VAULT_PATH", "private_vault"),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			Keys:              ParseAPIKeys(getEnv("GEMINI_API_KEYS", ""), getEnv("GOOGLE_GEMINI_API_KEY", "")),
			SmallModel:        small,
			LargeModel:        large,
			AllowedModels:     splitListOr(getEnv("ALLOWED_MODELS", ""), []string{small, large}),
			GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", 3*time.Minute),
			Temperature:       float32(getEnvAsFloat("AI_TEMPERATURE", 0)),
			MaxOutputTokens:   int32(getEnvAsInt("AI_MAX_OUTPUT_TOKENS", 0)),
		},
		Otel: OtelConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ParseUsers reads "alice:secret,bob:$2a$10$..." into a username -> password map.
// Entries without a colon or with an empty username are skipped.
func ParseUsers(raw string) map[string]string {
	users := make(map[string]string)
	for _, entry := range splitList(raw) {
		name, pass, ok := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		users[name] = pass
	}
	return users
}

// ParseAPIKeys reads the ordered "label:key,label:key" rotation list. A bare key
// without a label gets a positional label. When the list is empty the single
// fallback key (if any) becomes the only entry, labelled "Primary".
func ParseAPIKeys(raw, fallback string) []APIKey {
	var keys []APIKey
	for i, entry := range splitList(raw) {
		label, key, ok := strings.Cut(entry, ":")
		if !ok {
			label, key = "Key-"+strconv.Itoa(i+1), entry
		}
		label, key = strings.TrimSpace(label), strings.TrimSpace(key)
		if key == "" {
			continue
		}
		keys = append(keys, APIKey{Label: label, Key: key})
	}
	if len(keys) == 0 && fallback != "" {
		keys = append(keys, APIKey{Label: "Primary", Key: fallback})
	}
	return keys
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitListOr(raw string, fallback []string) []string {
	if list := splitList(raw); len(list) > 0 {
		return list
	}
	return fallback
}
