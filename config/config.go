package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	ReconcileSpec string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	redisDB, _ := strconv.Atoi(getenvOrDefault("REDIS_DB", "0"))
	cacheTTL, _ := strconv.Atoi(getenvOrDefault("CACHE_TTL_SECONDS", "300"))
	return &Config{
		Port:          getenvOrDefault("PORT", "8080"),
		MongoURI:      getenvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenvOrDefault("MONGO_DB", "blogapp"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CacheTTL:      time.Duration(cacheTTL) * time.Second,
		ReconcileSpec: getenvOrDefault("RECONCILE_INTERVAL", "@every 10m"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
