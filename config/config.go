package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Assistant
	Gemini    GeminiConfig
	Chat      ChatConfig
	Rules     RulesConfig
	Executive ExecutiveConfig

	// Storage
	Memory MemoryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type ChatConfig struct {
	HistoryLimit int
	SessionTTL   time.Duration
	MaxSessions  int
}

// RulesConfig points at an optional rules file. Empty means the embedded rule set.
type RulesConfig struct {
	Path string
}

// ExecutiveConfig bounds the per-session readiness tracking.
type ExecutiveConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// MemoryConfig controls the sqlite store for patterns and synced tasks.
type MemoryConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/lockfocus/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/lockfocus/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	// Chat
	cfg.Chat.HistoryLimit = viper.GetInt("chat.history_limit")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")

	cfg.Rules.Path = viper.GetString("rules.path")

	cfg.Executive.SessionTTL = viper.GetDuration("executive.session_ttl")
	cfg.Executive.MaxSessions = viper.GetInt("executive.max_sessions")

	// Memory
	cfg.Memory.Enabled = viper.GetBool("memory.enabled")
	cfg.Memory.Path = viper.GetString("memory.path")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("chat.history_limit", 20)
	viper.SetDefault("chat.session_ttl", "30m")
	viper.SetDefault("chat.max_sessions", 1000)

	viper.SetDefault("executive.session_ttl", "2h")
	viper.SetDefault("executive.max_sessions", 1000)

	viper.SetDefault("memory.enabled", true)
	viper.SetDefault("memory.path", "lockfocus-memory.db")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", c.HTTPServer.Port)
	}
	if c.Chat.HistoryLimit <= 0 {
		return fmt.Errorf("chat.history_limit must be positive, got %d", c.Chat.HistoryLimit)
	}
	if c.Chat.MaxSessions <= 0 {
		return fmt.Errorf("chat.max_sessions must be positive, got %d", c.Chat.MaxSessions)
	}
	if c.Memory.Enabled && strings.TrimSpace(c.Memory.Path) == "" {
		return fmt.Errorf("memory.path is required when memory is enabled")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// splitList splits a comma-separated value, since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
