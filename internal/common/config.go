package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	OCR OCRConfig
}

// OCRConfig holds configuration for the tesseract collaborator
type OCRConfig struct {
	Tesseract   string
	Language    string
	TessdataDir string
	OEM         int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_PATH", "tesseract"),
			Language:    getEnv("OCR_LANGUAGE", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			OEM:         getEnvAsInt("OCR_OEM", 0),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.Tesseract == "" {
		return NewAppError("CONFIG_ERROR", "TESSERACT_PATH must not be empty", ErrInvalidInput)
	}
	if c.OCR.Language == "" {
		return NewAppError("CONFIG_ERROR", "OCR_LANGUAGE must not be empty", ErrInvalidInput)
	}
	return nil
}
