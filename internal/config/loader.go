package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read when none is given.
const DefaultEnvFile = ".env"

// Load reads credentials from the environment.
// Priority: process ENV > dotenv file > defaults (via env-default tags).
// A missing dotenv file is not an error; a malformed one is.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.trim()

	return &cfg, nil
}

func (c *Config) trim() {
	c.AWS.AccessKeyID = strings.TrimSpace(c.AWS.AccessKeyID)
	c.AWS.SecretAccessKey = strings.TrimSpace(c.AWS.SecretAccessKey)
	c.AWS.Region = strings.TrimSpace(c.AWS.Region)
	c.Azure.Endpoint = strings.TrimRight(strings.TrimSpace(c.Azure.Endpoint), "/")
	c.Azure.Key = strings.TrimSpace(c.Azure.Key)
	c.IBM.APIKey = strings.TrimSpace(c.IBM.APIKey)
	c.IBM.URL = strings.TrimRight(strings.TrimSpace(c.IBM.URL), "/")
}
