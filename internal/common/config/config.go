// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Profiling ProfilingConfig `mapstructure:"profiling"`
	Session   SessionConfig   `mapstructure:"session"`
	AI        AIConfig        `mapstructure:"ai"`
	Language  LanguageConfig  `mapstructure:"language"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	DebugPort      int      `mapstructure:"debug_port"` // metrics + pprof listener
	RequestTimeout int      `mapstructure:"request_timeout"` // milliseconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

// CatalogConfig points at the static scheme catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ProfilingConfig carries the progressive-profiling policy knobs. Both
// thresholds are deliberate, separately tunable values: the orchestrator
// starts matching at AskThreshold while the completer only stops proposing
// questions at CompleteThreshold.
type ProfilingConfig struct {
	AskThreshold      float64 `mapstructure:"ask_threshold"`
	CompleteThreshold float64 `mapstructure:"complete_threshold"`
	MaxResults        int     `mapstructure:"max_results"`
}

type SessionConfig struct {
	TTLDays int `mapstructure:"ttl_days"`
}

// AIConfig holds settings for the hosted text-generation collaborator.
type AIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
}

// LanguageConfig holds settings for translation and speech synthesis.
type LanguageConfig struct {
	AWSRegion  string `mapstructure:"aws_region"`
	PollyVoice string `mapstructure:"polly_voice"`
	TTSEnabled bool   `mapstructure:"tts_enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
