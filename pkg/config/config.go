package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	PropertyRadar struct {
		BaseURL string `yaml:"base_url"`
		Token   string `yaml:"token"`
		// Delay between consecutive address lookups, in milliseconds.
		LookupDelayMS int `yaml:"lookup_delay_ms"`
	} `yaml:"propertyradar"`
	Monday struct {
		APIURL  string `yaml:"api_url"`
		Token   string `yaml:"token"`
		BoardID string `yaml:"board_id"`
	} `yaml:"monday"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if token := os.Getenv("PROPERTYRADAR_TOKEN"); token != "" {
		cfg.PropertyRadar.Token = token
	}
	if baseURL := os.Getenv("PROPERTYRADAR_BASE_URL"); baseURL != "" {
		cfg.PropertyRadar.BaseURL = baseURL
	}
	if token := os.Getenv("MONDAY_TOKEN"); token != "" {
		cfg.Monday.Token = token
	}
	if boardID := os.Getenv("MONDAY_BOARD_ID"); boardID != "" {
		cfg.Monday.BoardID = boardID
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.DB < 0 {
		cfg.Redis.DB = 0
	}
	if cfg.PropertyRadar.BaseURL == "" {
		cfg.PropertyRadar.BaseURL = "https://api.propertyradar.com"
	}
	if cfg.PropertyRadar.LookupDelayMS <= 0 {
		cfg.PropertyRadar.LookupDelayMS = 2000
	}
	if cfg.Monday.APIURL == "" {
		cfg.Monday.APIURL = "https://api.monday.com/v2"
	}

	// Validation
	if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if cfg.PropertyRadar.Token == "" {
		return nil, fmt.Errorf("PROPERTYRADAR_TOKEN is required")
	}

	return &cfg, nil
}
