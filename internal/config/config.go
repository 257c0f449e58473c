package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Kafka      KafkaConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// KafkaConfig holds the message-bus connection for the transaction feed.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SimulationConfig holds dataset-generation parameters shared by the
// simulate and loader commands.
type SimulationConfig struct {
	Seed             int64
	PropertiesPath   string
	AccountsPath     string
	OutputDir        string
	MonthsOut        int
	UserCount        int
	VendorCount      int
	VendorInvoiceMin int
	VendorInvoiceMax int
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "cashsight")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "cash_txn")
	v.SetDefault("SIM_SEED", 0)
	v.SetDefault("SIM_PROPERTIES_PATH", "data/seed/properties.csv")
	v.SetDefault("SIM_ACCOUNTS_PATH", "data/seed/chart_of_accounts.csv")
	v.SetDefault("SIM_OUTPUT_DIR", "data/raw/synthetic")
	v.SetDefault("SIM_MONTHS_OUT", 0)
	v.SetDefault("SIM_USER_COUNT", 0)
	v.SetDefault("SIM_VENDOR_COUNT", 50)
	v.SetDefault("SIM_VENDOR_INVOICE_MIN", 0)
	v.SetDefault("SIM_VENDOR_INVOICE_MAX", 0)

	// Bind environment variables
	v.AutomaticEnv()

	// Build configuration
	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		CORS: CORSConfig{
			Origins: parseList(v.GetString("CORS_ORIGINS")),
		},
		Kafka: KafkaConfig{
			Brokers: parseList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Simulation: SimulationConfig{
			Seed:             v.GetInt64("SIM_SEED"),
			PropertiesPath:   v.GetString("SIM_PROPERTIES_PATH"),
			AccountsPath:     v.GetString("SIM_ACCOUNTS_PATH"),
			OutputDir:        v.GetString("SIM_OUTPUT_DIR"),
			MonthsOut:        v.GetInt("SIM_MONTHS_OUT"),
			UserCount:        v.GetInt("SIM_USER_COUNT"),
			VendorCount:      v.GetInt("SIM_VENDOR_COUNT"),
			VendorInvoiceMin: v.GetInt("SIM_VENDOR_INVOICE_MIN"),
			VendorInvoiceMax: v.GetInt("SIM_VENDOR_INVOICE_MAX"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// Validate database config
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if c.Database.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if c.Database.PoolMin > c.Database.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}

	// Validate CORS config
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	// Validate Kafka config
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required")
	}

	// Validate simulation config
	if c.Simulation.PropertiesPath == "" {
		return fmt.Errorf("SIM_PROPERTIES_PATH is required")
	}
	if c.Simulation.AccountsPath == "" {
		return fmt.Errorf("SIM_ACCOUNTS_PATH is required")
	}
	if c.Simulation.OutputDir == "" {
		return fmt.Errorf("SIM_OUTPUT_DIR is required")
	}
	if c.Simulation.MonthsOut < 0 {
		return fmt.Errorf("SIM_MONTHS_OUT must be non-negative")
	}
	if c.Simulation.VendorCount < 1 {
		return fmt.Errorf("SIM_VENDOR_COUNT must be at least 1")
	}
	if c.Simulation.VendorInvoiceMin < 0 || c.Simulation.VendorInvoiceMax < 0 {
		return fmt.Errorf("vendor invoice bounds must be non-negative")
	}
	if c.Simulation.VendorInvoiceMax > 0 && c.Simulation.VendorInvoiceMin > c.Simulation.VendorInvoiceMax {
		return fmt.Errorf("SIM_VENDOR_INVOICE_MIN must be less than or equal to SIM_VENDOR_INVOICE_MAX")
	}

	return nil
}

// parseList splits a comma-separated string into a slice.
func parseList(value string) []string {
	if value == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
