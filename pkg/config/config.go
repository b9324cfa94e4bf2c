// Package config provides unified configuration for qyl API clients and the
// bundled tools.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (QYL_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import "time"

// Config holds all configuration for a qyl client and the local tools.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// APIConfig holds settings for talking to the qyl telemetry API.
type APIConfig struct {
	BaseURL              string        `yaml:"base_url"`              // default: "http://localhost:5100"
	Timeout              time.Duration `yaml:"timeout"`               // default: 30s, streams are not bounded
	UserAgent            string        `yaml:"user_agent"`            // optional
	CompressionThreshold int           `yaml:"compression_threshold"` // default: 1024, negative disables
}

// AuthConfig holds credential settings.
type AuthConfig struct {
	Type         string        `yaml:"type"`           // "none", "apikey" or "jwt", empty infers from the credentials
	APIKey       string        `yaml:"api_key"`        // for type=apikey
	APIKeyFile   string        `yaml:"api_key_file"`   // _file variant for api_key
	Header       string        `yaml:"header"`         // default: "X-API-Key"
	Token        string        `yaml:"token"`          // for type=jwt
	TokenFile    string        `yaml:"token_file"`     // _file variant for token
	Leeway       time.Duration `yaml:"leeway"`         // default: 30s
	AllowedHosts []string      `yaml:"allowed_hosts"`  // empty allows every host
	RateLimitRPM int           `yaml:"rate_limit_rpm"` // 0 disables
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // default: "info"
	Format string `yaml:"format"` // "text" or "json", default: "text"
	Debug  string `yaml:"debug"`  // comma-separated debug categories
}

// ServerConfig holds listener settings for the local mock API and the MCP
// bridge.
type ServerConfig struct {
	Port         int           `yaml:"port"`          // default: 5100
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"` // default: 0, streams stay open
	MetricsPath  string        `yaml:"metrics_path"`  // default: "/metrics"
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL:              "http://localhost:5100",
			Timeout:              30 * time.Second,
			CompressionThreshold: 1024,
		},
		Auth: AuthConfig{
			Leeway: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Port:        5100,
			ReadTimeout: 30 * time.Second,
			MetricsPath: "/metrics",
		},
	}
}

// AuthType resolves the effective credential type. An empty Type picks jwt
// when a token is configured, then apikey when a key is, and none otherwise.
func (a AuthConfig) AuthType() string {
	if a.Type != "" {
		return a.Type
	}
	switch {
	case a.Token != "" || a.TokenFile != "":
		return "jwt"
	case a.APIKey != "" || a.APIKeyFile != "":
		return "apikey"
	}
	return "none"
}
