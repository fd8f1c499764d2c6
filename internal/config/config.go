package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type CompilerConfig struct {
	// Command replaces the default "npx gltfjsx" prefix, e.g. ["pnpm", "dlx", "gltfjsx"].
	Command []string `yaml:"command,omitempty"`
}

type ProjectConfig struct {
	ModelsDir string         `yaml:"models_dir,omitempty"`
	OutputDir string         `yaml:"output_dir,omitempty"`
	Compiler  CompilerConfig `yaml:"compiler,omitempty"`
}

const ConfigFileName = "modelconv.yaml"

// Load reads modelconv.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

func (c *ProjectConfig) validate() error {
	for i, part := range c.Compiler.Command {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("compiler.command[%d] is blank", i)
		}
	}
	return nil
}
