package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Firebase  FirebaseConfig
	Redis     RedisConfig
	Reconcile ReconcileConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

type CORSConfig struct {
	AllowOrigin string
}

// FirebaseConfig holds the service-account credential supplied via the
// SERVICE_ACCOUNT_KEY environment variable. The raw JSON is handed to the
// Firebase SDK; the parsed fields exist only for fail-fast validation.
type FirebaseConfig struct {
	ServiceAccountKey []byte
	ProjectID         string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type ReconcileConfig struct {
	Schedule string
}

type AppConfig struct {
	Environment string
	Version     string
}

type serviceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		CORS: CORSConfig{
			AllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "https://enesocakci.com"),
		},
		Firebase: FirebaseConfig{
			ServiceAccountKey: []byte(os.Getenv("SERVICE_ACCOUNT_KEY")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Reconcile: ReconcileConfig{
			Schedule: getEnv("RECONCILE_SCHEDULE", "0 0 0 * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Firebase.ServiceAccountKey) == 0 {
		return fmt.Errorf("SERVICE_ACCOUNT_KEY is required")
	}

	var sa serviceAccount
	if err := json.Unmarshal(c.Firebase.ServiceAccountKey, &sa); err != nil {
		return fmt.Errorf("SERVICE_ACCOUNT_KEY is not valid JSON: %w", err)
	}
	if sa.ProjectID == "" || sa.ClientEmail == "" || sa.PrivateKey == "" {
		return fmt.Errorf("SERVICE_ACCOUNT_KEY is missing project_id, client_email or private_key")
	}
	c.Firebase.ProjectID = sa.ProjectID

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
