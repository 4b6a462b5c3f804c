package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Server holds the HTTP server settings, read from the environment.
type Server struct {
	Addr     string `env:"LIFEOS_ADDR" envDefault:":8080"`
	DataFile string `env:"LIFEOS_DATA_FILE" envDefault:"user_data.json"`
	// DBDSN switches persistence from the flat file to postgres when set.
	DBDSN string `env:"LIFEOS_DB_DSN"`
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}

// CLI holds the command-line shell settings, read from an optional YAML file.
type CLI struct {
	DataFile string `yaml:"data_file"`
	Name     string `yaml:"name"`
}

func DefaultCLI() CLI {
	return CLI{DataFile: "user_data.json"}
}

// LoadCLI reads the YAML config at path. A missing file is not an error;
// defaults apply.
func LoadCLI(path string) (CLI, error) {
	cfg := DefaultCLI()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return CLI{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return CLI{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "user_data.json"
	}
	return cfg, nil
}
