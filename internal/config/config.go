package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all server and client settings.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Auth   AuthConfig   `yaml:"auth"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig configures the WebSocket server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig configures the persistence store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig configures token-based identity.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  int    `yaml:"token_ttl"` // hours
}

// TokenTTLDuration returns the token lifetime.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	return time.Duration(c.TokenTTL) * time.Hour
}

// GameConfig tunes the session rules.
type GameConfig struct {
	StartingLives int  `yaml:"starting_lives"`
	HandSize      int  `yaml:"hand_size"`
	Sound         bool `yaml:"sound"`
}

// Load reads a yaml config file, filling defaults for absent values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1790
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = "dev-only-secret"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24
	}
	if c.Game.StartingLives == 0 {
		c.Game.StartingLives = 3
	}
	if c.Game.HandSize == 0 {
		c.Game.HandSize = 9
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
