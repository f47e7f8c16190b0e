package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	Sources  SourcesConfig
	Output   OutputConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// PipelineConfig holds pipeline defaults
type PipelineConfig struct {
	Query         string
	ShipToZip     string
	TopN          int
	BoostPerMatch float64
}

// SourcesConfig holds retailer adapter configuration
type SourcesConfig struct {
	BestBuyAPIKey string
	WalmartAPIKey string
	CSVPath       string
}

// OutputConfig holds output writer configuration
type OutputConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Env:  getEnv("APP_ENV", "development"),
		},
		Pipeline: PipelineConfig{
			Query:         getEnv("PIPELINE_QUERY", "ergonomic mechanical keyboard"),
			ShipToZip:     getEnv("PIPELINE_SHIP_TO_ZIP", "11201"),
			TopN:          getEnvAsInt("PIPELINE_TOP_N", 10),
			BoostPerMatch: getEnvAsFloat("PIPELINE_BOOST_PER_MATCH", 5),
		},
		Sources: SourcesConfig{
			BestBuyAPIKey: getEnv("BESTBUY_API_KEY", ""),
			WalmartAPIKey: getEnv("WALMART_API_KEY", ""),
			CSVPath:       getEnv("CSV_SOURCE_PATH", ""),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "output"),
		},
	}, nil
}

// ServerAddr returns the host:port address for the HTTP server
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
