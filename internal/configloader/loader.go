// Package configloader resolves the effective ruledoc configuration.
// It discovers the project config file by upward search, merges it with an
// explicit --config file, RULEDOC_* environment variables, and CLI flags,
// and validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/ruledoc/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory the upward project config search starts
	// from. Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is merged on top of any discovered project config.
	ExplicitPath string

	// IgnoreProjectConfig skips the project config search.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// ProjectPath is the discovered project config path, or empty.
	ProjectPath string

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (RULEDOC_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.ruledoc.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	// Load and merge in order (lowest to highest precedence)

	// 1. Project config
	if !opts.IgnoreProjectConfig {
		projectPath, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		result.ProjectPath = projectPath

		if projectPath != "" {
			projectCfg, warnings, err := loadConfigLayer(projectPath)
			if err != nil {
				return nil, fmt.Errorf("load project config: %w", err)
			}
			cfg = merge(cfg, projectCfg)
			result.LoadedFrom = append(result.LoadedFrom, projectPath)
			result.Warnings = append(result.Warnings, warnings...)
		}
	}

	// 2. Explicit config (--config flag)
	if opts.ExplicitPath != "" {
		explicitCfg, warnings, err := loadConfigLayer(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
		result.Warnings = append(result.Warnings, warnings...)
	}

	// 3. Environment variables
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// 4. CLI config (highest precedence)
	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Validate the final merged configuration; the env and CLI layers can
	// introduce invalid values too. Warnings were already collected per
	// file, where they fire only on what that file actually sets.
	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result.Config = cfg
	return result, nil
}

// loadConfigLayer reads, parses, and validates one config file. Validation
// errors carry the file path; warnings are returned as messages.
func loadConfigLayer(path string) (*config.Config, []string, error) {
	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, nil, err
	}

	validation := ValidateWithFile(cfg, path)
	if !validation.Valid() {
		return nil, nil, &validation.Errors[0]
	}

	warnings := make([]string, 0, len(validation.Warnings))
	for _, w := range validation.Warnings {
		warnings = append(warnings, w.Error())
	}

	return cfg, warnings, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
