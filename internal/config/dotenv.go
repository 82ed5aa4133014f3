package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil. Variables already
// set in the environment win over the file.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// LoadConfig loads configuration from a .env file (optional) and
// environment variables.
func LoadConfig(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	return envCfg.ToConfig()
}
