package util

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `mapstructure:"PORT" validate:"required,number"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	StaticDir      string `mapstructure:"STATIC_DIR" validate:"required"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFile        string `mapstructure:"LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:           os.Getenv("PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		StaticDir:      getenv("STATIC_DIR", "./public"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Origins splits the comma-separated browser origin allow-list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}

	return strings.Split(c.AllowedOrigins, ",")
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
