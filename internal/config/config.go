package config

import "os"

type Config struct {
	ServerPort         string
	FirestoreProjectID string
}

func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
