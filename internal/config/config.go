package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	// Gemini carries every configured key; the inference client rotates
	// through them.
	Gemini       []string
	HistoryTopic string
}

type AIConfig struct {
	Model        string
	PythonBinary string
	MLScriptPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Gemini:       geminiKeys(),
			HistoryTopic: getEnv("HISTORY_TOPIC", "diagnosis.history"),
		},
		Ai: AIConfig{
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			PythonBinary: getEnv("ML_PYTHON_BINARY", "python3"),
			MLScriptPath: getEnv("ML_SCRIPT_PATH", "scripts/predict.py"),
		},
	}
}

// geminiKeys collects GEMINI_API_KEY plus the numbered spares
// (GEMINI_API_KEY1..GEMINI_API_KEY3) so one exhausted key does not take the
// whole pipeline down.
func geminiKeys() []string {
	names := []string{"GEMINI_API_KEY", "GEMINI_API_KEY1", "GEMINI_API_KEY2", "GEMINI_API_KEY3"}

	var keys []string
	for _, name := range names {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
