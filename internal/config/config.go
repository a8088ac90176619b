package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port          string `yaml:"port"`
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	SessionSecret string `yaml:"session_secret"`
	LogLevel      string `yaml:"log_level"`
}

// Default is the configuration used when no config file is present:
// a local sqlite database on port 8080.
func Default() *Config {
	return &Config{
		Port:          "8080",
		DBDriver:      "sqlite3",
		DBDSN:         "sightings.db",
		SessionSecret: "dev-only-session-secret",
		LogLevel:      "info",
	}
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}
