package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Security SecurityConfig `json:"security"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds token signing configuration. Tokens are HS256 signed with
// a single shared secret.
type JWTConfig struct {
	Secret   string        `json:"secret"`
	TokenTTL time.Duration `json:"tokenTtl"`
}

// SecurityConfig holds security-related configuration
type SecurityConfig struct {
	BcryptCost       int `json:"bcryptCost"`
	MinPasswordScore int `json:"minPasswordScore"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name string `json:"name"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then values from a .env file
// (if one exists), then hardcoded defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv.Load only sets values that are not already present in the
	// environment, which gives the precedence above for free.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		// A missing .env file is not an error.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 3001),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:            getEnvAsInt("POSTGRES_PORT", 5432),
				Username:        getEnvOrDefault("POSTGRES_USERNAME", ""),
				Password:        getEnvOrDefault("POSTGRES_PASSWORD", ""),
				Database:        getEnvOrDefault("POSTGRES_DATABASE", "jobly"),
				SSLMode:         getEnvOrDefault("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			Secret:   getEnvOrDefault("JWT_SECRET", ""),
			TokenTTL: getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:       getEnvAsInt("BCRYPT_COST", 12),
			MinPasswordScore: getEnvAsInt("MIN_PASSWORD_SCORE", 2),
		},
		App: AppConfig{
			Name: getEnvOrDefault("APP_NAME", "jobly"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map. This is the primary
// helper for testing configuration logic in isolation without manipulating
// global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:      get("HOST", "localhost"),
			Port:      getInt("SERVER_PORT", 3001),
			BaseRoute: get("BASE_ROUTE", "/"),
			WebDomain: get("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", ""),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "jobly"),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			Secret:   get("JWT_SECRET", ""),
			TokenTTL: getDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:       getInt("BCRYPT_COST", 12),
			MinPasswordScore: getInt("MIN_PASSWORD_SCORE", 2),
		},
		App: AppConfig{
			Name: get("APP_NAME", "jobly"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.Secret) == "" {
		errors = append(errors, "JWT_SECRET is required")
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		errors = append(errors, "BCRYPT_COST must be between 4 and 31")
	}
	if strings.TrimSpace(c.Database.Postgres.Database) == "" {
		errors = append(errors, "POSTGRES_DATABASE is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
