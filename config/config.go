package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the spellchecker
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Server     ServerConfig     `mapstructure:"server"`
	Search     SearchConfig     `mapstructure:"search"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig points at the word list loaded on start
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds websocket server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SearchConfig controls prefix search in the drivers
type SearchConfig struct {
	MinPrefix int `mapstructure:"min_prefix"`
	Limit     int `mapstructure:"limit"`
}

// KafkaConfig holds event publishing configuration. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("spellcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "tiny_frequency.txt")
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("search.min_prefix", 3)
	v.SetDefault("search.limit", 10)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "spellchecker-events")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr cannot be empty")
	}
	if c.Search.MinPrefix < 1 {
		return fmt.Errorf("invalid search min_prefix: %d", c.Search.MinPrefix)
	}
	if c.Search.Limit < 1 {
		return fmt.Errorf("invalid search limit: %d", c.Search.Limit)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are set")
	}
	return nil
}

// KafkaEnabled reports whether mutation events should be published
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
