package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Parser      ParserConfig
	Categorizer CategorizerConfig
	RatesJob    RatesJobConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ParserConfig struct {
	// TmpDir is where uploaded statement files are staged before parsing.
	TmpDir string
}

type CategorizerConfig struct {
	// Providers is the ordered rotation of classification backends.
	Providers      []string
	Model          string
	APIToken       string
	MaxAttempts    int
	AttemptTimeout time.Duration
	BackoffBase    time.Duration
}

type RatesJobConfig struct {
	BaseURL      string
	AppID        string
	Source       string
	BaseCurrency string
	Symbols      []string
	MaxRetries   int
	Timeout      time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Parser: ParserConfig{
			TmpDir: getEnv("TMP_DATA_PATH", "./tmp_data"),
		},
		Categorizer: CategorizerConfig{
			Providers:      getListEnv("CATEGORIZER_PROVIDERS", []string{"cerebras", "together", "fireworks"}),
			Model:          getEnv("CATEGORIZER_MODEL", "meta-llama/Llama-3.3-70B-Instruct"),
			APIToken:       getEnv("CATEGORIZER_API_TOKEN", ""),
			MaxAttempts:    getIntEnv("CATEGORIZER_MAX_ATTEMPTS", 3),
			AttemptTimeout: getDurationEnv("CATEGORIZER_ATTEMPT_TIMEOUT", 30*time.Second),
			BackoffBase:    getDurationEnv("CATEGORIZER_BACKOFF_BASE", time.Second),
		},
		RatesJob: RatesJobConfig{
			BaseURL:      getEnv("OER_BASE_URL", "https://openexchangerates.org/api/latest.json"),
			AppID:        getEnv("OER_APP_ID", ""),
			Source:       getEnv("RATES_SOURCE", "openexchangerates"),
			BaseCurrency: getEnv("RATES_BASE_CURRENCY", "USD"),
			Symbols:      getListEnv("RATES_SYMBOLS", []string{"CAD", "CNY"}),
			MaxRetries:   getIntEnv("RATES_MAX_RETRIES", 3),
			Timeout:      getDurationEnv("RATES_TIMEOUT", 10*time.Second),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
