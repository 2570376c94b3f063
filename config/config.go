package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultEnv                   = "development"
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
	DefaultDBMaxConns            = 10
	DefaultLogLevel              = "info"

	// Matches the cost of the stored password hashes.
	DefaultBcryptCost = 12
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	DBMaxConns         int
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	CookieSecure       bool
	LogLevel           string
	RunMigrations      bool
	BcryptCost         int
}

// Load reads config/.env.dev or config/.env.prod (depending on ENV) and then
// the process environment. Values already present in the environment win.
func Load() *Config {
	env := getEnv("ENV", DefaultEnv)
	loadEnvFile(env)

	return &Config{
		Env:                env,
		Port:               getEnv("PORT", DefaultPort),
		DBURL:              mustGetEnv("DB_URL"),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		CookieSecure:       getEnvAsBool("COOKIE_SECURE", false),
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		RunMigrations:      getEnvAsBool("RUN_MIGRATIONS", false),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
	}
}

func loadEnvFile(env string) {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}

	path := filepath.Join("config", name)
	if _, err := os.Stat(path); err != nil {
		return
	}
	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		log.Printf("Could not load %s: %v", path, err)
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
