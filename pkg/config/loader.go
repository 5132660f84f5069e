package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// MetabuildYAMLConfig represents the complete metabuild.yaml file structure
type MetabuildYAMLConfig struct {
	Queue         *QueueConfig     `yaml:"queue"`
	Scheduler     *SchedulerConfig `yaml:"scheduler"`
	Canary        *CanaryConfig    `yaml:"canary"`
	Chaos         *ChaosConfig     `yaml:"chaos"`
	Evaluator     *EvaluatorConfig `yaml:"evaluator"`
	LLM           *LLMConfig       `yaml:"llm"`
	Retention     *RetentionConfig `yaml:"retention"`
	DefaultTenant string           `yaml:"default_tenant"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load metabuild.yaml from configDir (missing file → pure defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user config over built-in defaults
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"experimental_fraction", cfg.Canary.ExperimentalFraction,
		"chaos_enabled", cfg.Chaos.Enabled,
		"golden_suites", len(cfg.Evaluator.Suites))

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	userCfg := &MetabuildYAMLConfig{}

	path := filepath.Join(configDir, "metabuild.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("metabuild.yaml not found, using built-in defaults", "path", path)
	case err != nil:
		return nil, NewLoadError("metabuild.yaml", err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, userCfg); err != nil {
			return nil, NewLoadError("metabuild.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	cfg := &Config{
		configDir:     configDir,
		Queue:         DefaultQueueConfig(),
		Scheduler:     DefaultSchedulerConfig(),
		Canary:        DefaultCanaryConfig(),
		Chaos:         DefaultChaosConfig(),
		Evaluator:     DefaultEvaluatorConfig(),
		LLM:           DefaultLLMConfig(),
		Retention:     DefaultRetentionConfig(),
		DefaultTenant: "default",
	}

	// Merge user config over defaults (non-zero values override).
	if userCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if userCfg.Scheduler != nil {
		if err := mergo.Merge(cfg.Scheduler, userCfg.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}
	if userCfg.Canary != nil {
		if err := mergo.Merge(cfg.Canary, userCfg.Canary, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge canary config: %w", err)
		}
	}
	if userCfg.Chaos != nil {
		cfg.Chaos = userCfg.Chaos
	}
	if userCfg.Evaluator != nil {
		if err := mergo.Merge(cfg.Evaluator, userCfg.Evaluator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge evaluator config: %w", err)
		}
	}
	if userCfg.LLM != nil {
		if err := mergo.Merge(cfg.LLM, userCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	if userCfg.Retention != nil {
		if err := mergo.Merge(cfg.Retention, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}
	if userCfg.DefaultTenant != "" {
		cfg.DefaultTenant = userCfg.DefaultTenant
	}

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
