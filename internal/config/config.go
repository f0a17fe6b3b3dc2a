// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port string

	// UseMemoryStore keeps ledgers in process memory instead of Google Sheets.
	UseMemoryStore bool
	// SessionBackend is "memory" (the default) or "firestore". Memory sessions
	// are rebuilt from document names after a restart.
	SessionBackend string

	ProjectID       string
	CredentialsFile string
	DriveFolderID   string

	TwilioAuthToken string
	PublicURL       string

	CurrencySymbol string
	AllowedOrigins []string
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] Failed to load .env file: %v", err)
	}

	useMemory := getEnv("USE_MEMORY_STORE", "") == "true" || getEnv("ENV", "") == "local"

	return &Config{
		Port:            getEnv("PORT", "8111"),
		UseMemoryStore:  useMemory,
		SessionBackend:  strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		ProjectID:       getEnv("GOOGLE_CLOUD_PROJECT", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DriveFolderID:   getEnv("DRIVE_FOLDER_ID", ""),
		TwilioAuthToken: getEnv("TWILIO_AUTH_TOKEN", ""),
		PublicURL:       getEnv("PUBLIC_URL", ""),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "₹"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
