package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"conserje/internal/config"
)

// LoadConfig reads the yaml config at path; when the file does not exist the
// environment-backed defaults are used instead.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Load()
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
