// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like GENAI_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, ignored if not present
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations (running from different directories)
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Expand ${VAR} placeholders in string values
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.AI.GenAI.APIKey == "" {
		if val := os.Getenv("GENAI_API_KEY"); val != "" {
			cfg.AI.GenAI.APIKey = val
		}
	}

	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
	if cfg.Database.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Database.Redis.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "gameforge"
	}

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = ":8080"
	}
	if cfg.Server.MetricsAddress == "" {
		cfg.Server.MetricsAddress = ":9090"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}

	if cfg.Catalog.Dimensions == 0 {
		cfg.Catalog.Dimensions = 768
	}

	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 2
	}
	if cfg.Retrieval.OverrideConfidence == 0 {
		cfg.Retrieval.OverrideConfidence = 0.5
	}
	if cfg.Retrieval.MaxContextBytes == 0 {
		cfg.Retrieval.MaxContextBytes = 16384
	}
	if cfg.Retrieval.EmbedTimeout == 0 {
		cfg.Retrieval.EmbedTimeout = 10000
	}

	if cfg.Generation.Timeout == 0 {
		cfg.Generation.Timeout = 30000
	}
	if cfg.Generation.MaxTokens == 0 {
		cfg.Generation.MaxTokens = 8000
	}
	if cfg.Generation.Temperature == 0 {
		cfg.Generation.Temperature = 1.0
	}
	if cfg.Generation.MaxPromptLength == 0 {
		cfg.Generation.MaxPromptLength = 2000
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "genai"
	}
	if cfg.AI.GenAI.EmbedModel == "" {
		cfg.AI.GenAI.EmbedModel = "gemini-embedding-001"
	}
	if cfg.AI.GenAI.CompletionModel == "" {
		cfg.AI.GenAI.CompletionModel = "gemini-2.0-flash"
	}
	if cfg.AI.HTTPAPI.Timeout == 0 {
		cfg.AI.HTTPAPI.Timeout = 30000
	}

	if cfg.Jobs.Store == "" {
		cfg.Jobs.Store = "memory"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// validateConfig checks cross-field consistency before startup
func validateConfig(cfg *Config) error {
	switch cfg.AI.Provider {
	case "genai":
		if cfg.AI.GenAI.APIKey == "" {
			return fmt.Errorf("ai.genai.api_key is required when ai.provider is genai")
		}
	case "httpapi":
		if cfg.AI.HTTPAPI.BaseURL == "" {
			return fmt.Errorf("ai.httpapi.base_url is required when ai.provider is httpapi")
		}
	default:
		return fmt.Errorf("unsupported ai.provider: %s (use 'genai' or 'httpapi')", cfg.AI.Provider)
	}

	switch cfg.Jobs.Store {
	case "memory":
	case "redis":
		if cfg.Database.Redis.Address == "" {
			return fmt.Errorf("database.redis.address is required when jobs.store is redis")
		}
	case "postgres":
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when jobs.store is postgres")
		}
	default:
		return fmt.Errorf("unsupported jobs.store: %s (use 'memory', 'redis' or 'postgres')", cfg.Jobs.Store)
	}

	if cfg.Retrieval.TopK < 1 {
		return fmt.Errorf("retrieval.top_k must be >= 1")
	}

	return nil
}
