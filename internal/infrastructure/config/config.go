package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	QuestionsFile string
	ResultsDir    string
	DefaultUser   string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		QuestionsFile: getenvDefault("QUIZGEN_QUESTIONS_FILE", "questions.json"),
		ResultsDir:    getenvDefault("QUIZGEN_RESULTS_DIR", "results"),
		DefaultUser:   getenvDefault("QUIZGEN_USER", "Anonim"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
