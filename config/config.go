package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	PushEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:         get("PORT", "8080"),
		MongoURI:     get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      get("MONGO_DB", "myovai"),
		JWTSecret:    get("JWT_SECRET", GenerateRandomKey()),
		PushEndpoint: get("PUSH_ENDPOINT", "https://exp.host/--/api/v2/push/send"),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// GenerateRandomKey returns a random hex key used to sign JWTs when no
// JWT_SECRET is configured. Tokens do not survive a restart in that case.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
