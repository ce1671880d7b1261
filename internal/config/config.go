package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	DB struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"db"`
	Ollama struct {
		URL            string  `mapstructure:"url"`
		Model          string  `mapstructure:"model"`
		Temperature    float64 `mapstructure:"temperature"`
		NumPredict     int     `mapstructure:"num_predict"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	} `mapstructure:"ollama"`
	TLS struct {
		Enable    bool     `mapstructure:"enable"`
		CertFile  string   `mapstructure:"cert_file"`
		KeyFile   string   `mapstructure:"key_file"`
		Hostnames []string `mapstructure:"hostnames"`
	} `mapstructure:"tls"`
}

// LoadConfig loads the configuration from a file and the environment. An
// optional .env file path may be supplied; its variables are merged into the
// process environment before viper reads it.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("ollama.model", "sqlcoder-7b-2:local")
	viper.SetDefault("ollama.temperature", 0.3)
	viper.SetDefault("ollama.num_predict", 512)
	viper.SetDefault("ollama.timeout_seconds", 60)

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and the environment cover a missing config file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
