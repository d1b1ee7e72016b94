package main

import (
	"fmt"

	"viewgen/internal/analyze"
	"viewgen/internal/config"
	"viewgen/internal/decl"
	"viewgen/internal/plan"
)

// buildPlan runs the shared front half of every command: load config,
// analyze model packages, parse declarations, resolve.
func buildPlan() (*config.Config, *plan.ResolvedViewPlan, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}

	analyzer := analyze.NewAnalyzer()

	if err := analyzer.LoadPackages(cfg.Models...); err != nil {
		return nil, nil, fmt.Errorf("analyzing model packages: %w", err)
	}

	var files []*decl.File

	for _, path := range cfg.Declarations {
		f, err := decl.ParseFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		files = append(files, f)
	}

	resolver := plan.NewResolver(analyzer.Graph(), files, plan.Config{LocalPkg: cfg.PackagePath})

	p, err := resolver.Resolve()
	if err != nil {
		return cfg, p, err
	}

	return cfg, p, nil
}
