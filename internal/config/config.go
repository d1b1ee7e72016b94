package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"viewgen/internal/gen"
)

// Config is the parsed viewgen.yaml file.
type Config struct {
	// Version is the config schema version.
	Version string `yaml:"version"`
	// Package is the name of the generated package.
	Package string `yaml:"package"`
	// PackagePath is the import path of the generated package. Model
	// types from it render unqualified.
	PackagePath string `yaml:"package_path"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output"`
	// Models are package patterns to analyze, in go/packages form
	// (e.g. "./store/...").
	Models []string `yaml:"models"`
	// Declarations are the view declaration files to parse.
	Declarations []string `yaml:"declarations"`
	// Variants restricts which adapter variants are generated, by
	// suffix name ("Owned", "Ref", "Vec", ...). Empty means all.
	Variants []string `yaml:"variants"`
	// Comments enables explanatory comments in generated code.
	Comments bool `yaml:"comments"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields. The
// package name default is shared with the generator's own defaults.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Package == "" {
		cfg.Package = gen.DefaultGeneratorConfig().PackageName
	}

	if cfg.Output == "" {
		cfg.Output = "./" + cfg.Package
	}
}

// validate rejects configs the pipeline cannot run with.
func validate(cfg *Config) error {
	if len(cfg.Models) == 0 {
		return fmt.Errorf("config: no model packages listed")
	}

	if len(cfg.Declarations) == 0 {
		return fmt.Errorf("config: no declaration files listed")
	}

	if _, err := gen.ParseVariants(cfg.Variants); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// GeneratorConfig converts the file config to generator settings.
func (cfg *Config) GeneratorConfig() (gen.GeneratorConfig, error) {
	variants, err := gen.ParseVariants(cfg.Variants)
	if err != nil {
		return gen.GeneratorConfig{}, err
	}

	return gen.GeneratorConfig{
		PackageName:      cfg.Package,
		PackagePath:      cfg.PackagePath,
		OutputDir:        cfg.Output,
		GenerateComments: cfg.Comments,
		Variants:         variants,
	}, nil
}
