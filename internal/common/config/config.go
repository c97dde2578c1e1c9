// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Retrieval  RetrievalConfig  `mapstructure:"retrieval"`
	Generation GenerationConfig `mapstructure:"generation"`
	AI         AIConfig         `mapstructure:"ai"`
	Jobs       JobsConfig       `mapstructure:"jobs"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	ListenAddress  string `mapstructure:"listen_address"`
	MetricsAddress string `mapstructure:"metrics_address"`
	ReadTimeout    int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Pipeline Configuration Sections ---

// CatalogConfig holds template catalog settings.
type CatalogConfig struct {
	// Path to a catalog JSON written by cmd/tools/catalog-builder. Empty
	// means the built-in seed catalog (with locally computed embeddings).
	Path       string `mapstructure:"path"`
	Dimensions int    `mapstructure:"dimensions"`
}

// RetrievalConfig holds settings for the retriever.
type RetrievalConfig struct {
	TopK int `mapstructure:"top_k"`
	// OverrideConfidence is the classifier confidence above which the
	// keyword signal re-ranks similarity results. Tunable, not a contract.
	OverrideConfidence float64 `mapstructure:"override_confidence"`
	MaxContextBytes    int     `mapstructure:"max_context_bytes"`
	EmbedTimeout       int     `mapstructure:"embed_timeout"` // milliseconds
}

// EmbedTimeoutDuration returns the embedding timeout as a duration.
func (r RetrievalConfig) EmbedTimeoutDuration() time.Duration {
	return time.Duration(r.EmbedTimeout) * time.Millisecond
}

// GenerationConfig holds settings for the generator.
type GenerationConfig struct {
	Timeout         int     `mapstructure:"timeout"` // milliseconds
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxPromptLength int     `mapstructure:"max_prompt_length"`
}

// TimeoutDuration returns the generation timeout as a duration.
func (g GenerationConfig) TimeoutDuration() time.Duration {
	return time.Duration(g.Timeout) * time.Millisecond
}

// AIConfig holds settings for the embedding and generative-text providers.
type AIConfig struct {
	// Provider: "genai" (Gemini API) or "httpapi" (self-hosted REST endpoint).
	Provider string `mapstructure:"provider"`

	GenAI struct {
		APIKey          string `mapstructure:"api_key"`
		EmbedModel      string `mapstructure:"embed_model"`
		CompletionModel string `mapstructure:"completion_model"`
	} `mapstructure:"genai"`

	HTTPAPI struct {
		BaseURL string `mapstructure:"base_url"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"httpapi"`
}

// JobsConfig holds settings for the job lifecycle manager.
type JobsConfig struct {
	// Store backend: "memory", "redis" or "postgres".
	Store string `mapstructure:"store"`
	// TTL for finished jobs in the redis backend, seconds. 0 keeps forever.
	TTL int `mapstructure:"ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
