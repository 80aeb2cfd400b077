package cli

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the optional kubesql config file. Flags win over file values.
type Config struct {
	Kubeconfig string `yaml:"kubeconfig"`
}

// LoadConfig reads the config file at path, defaulting to ~/.kubesql.yaml.
// A missing file yields an empty config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".kubesql.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return config, nil
}
