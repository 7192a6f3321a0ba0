package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Chat     ChatConfig
	Static   StaticConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AIConfig selects the language-model provider used to answer questions.
// The API key is resolved once at startup; an empty key leaves the service
// running but makes every chat request fail with a configuration error.
type AIConfig struct {
	Provider string // gemini, openai or gigachat
	APIKey   string
	Model    string

	// OpenAI-compatible servers only.
	OpenAIBaseURL string

	// GigaChat only.
	GigaChatScope              string
	GigaChatInsecureSkipVerify bool
}

type ChatConfig struct {
	// MaxContextChars bounds how many runes of a book's content are embedded
	// into the prompt. Content beyond the bound is cut, mid-sentence if need be.
	MaxContextChars int
}

type StaticConfig struct {
	Dir       string
	UploadDir string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, plain environment variables still apply.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxContextChars, _ := strconv.Atoi(getEnv("CHAT_MAX_CONTEXT_CHARS", "100000"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	provider := getEnv("AI_PROVIDER", "gemini")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bookchat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		AI: AIConfig{
			Provider:                   provider,
			APIKey:                     apiKeyFor(provider),
			Model:                      getEnv("AI_MODEL", defaultModelFor(provider)),
			OpenAIBaseURL:              getEnv("OPENAI_BASE_URL", ""),
			GigaChatScope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			GigaChatInsecureSkipVerify: insecureSkipVerify,
		},
		Chat: ChatConfig{
			MaxContextChars: maxContextChars,
		},
		Static: StaticConfig{
			Dir:       getEnv("STATIC_DIR", "static"),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func apiKeyFor(provider string) string {
	switch provider {
	case "openai":
		return getEnv("OPENAI_API_KEY", "")
	case "gigachat":
		return getEnv("GIGACHAT_API_KEY", "")
	default:
		return getEnv("GEMINI_API_KEY", "")
	}
}

func defaultModelFor(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "gigachat":
		return "GigaChat"
	default:
		return "gemini-1.5-flash"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
