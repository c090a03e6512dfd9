// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; zero values mean "not set"

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/termctl/internal/log"
	"github.com/mauromedda/termctl/pkg/term/info"
	"github.com/mauromedda/termctl/pkg/term/process"
)

// Defaults applied by WithDefaults.
const (
	DefaultPollInterval = 20 * time.Millisecond
	DefaultProbeTimeout = process.DefaultTimeout
	DefaultLogLevel     = "warn"
)

// Settings holds the merged configuration.
type Settings struct {
	// Providers lists size strategies in priority order: fd, mode, stty, env.
	Providers    []string          `yaml:"providers,omitempty"`
	PollInterval time.Duration     `yaml:"poll_interval,omitempty"`
	ProbeTimeout time.Duration     `yaml:"probe_timeout,omitempty"`
	LogLevel     string            `yaml:"log_level,omitempty"`
	Env          map[string]string `yaml:"env,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are not errors.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	pilog.Debug("config: loaded %s", path)
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; env maps are merged key
// by key.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	result.Env = maps.Clone(global.Env)

	if len(project.Providers) > 0 {
		result.Providers = slices.Clone(project.Providers)
	}
	if project.PollInterval != 0 {
		result.PollInterval = project.PollInterval
	}
	if project.ProbeTimeout != 0 {
		result.ProbeTimeout = project.ProbeTimeout
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}

	if len(project.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string, len(project.Env))
		}
		maps.Copy(result.Env, project.Env)
	}

	return &result
}

// WithDefaults returns a copy of s with unset fields filled in.
func (s Settings) WithDefaults() Settings {
	if s.PollInterval == 0 {
		s.PollInterval = DefaultPollInterval
	}
	if s.ProbeTimeout == 0 {
		s.ProbeTimeout = DefaultProbeTimeout
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}

// Validate rejects unknown provider names, negative durations, and
// unknown log levels.
func (s *Settings) Validate() error {
	known := []string{info.ProviderFd, info.ProviderMode, info.ProviderStty, info.ProviderEnv}
	for _, p := range s.Providers {
		if !slices.Contains(known, p) {
			return fmt.Errorf("config: unknown provider %q (want one of %v)", p, known)
		}
	}
	if s.PollInterval < 0 {
		return fmt.Errorf("config: poll_interval must not be negative, got %s", s.PollInterval)
	}
	if s.ProbeTimeout < 0 {
		return fmt.Errorf("config: probe_timeout must not be negative, got %s", s.ProbeTimeout)
	}
	if s.LogLevel != "" {
		if _, ok := pilog.ParseLevel(s.LogLevel); !ok {
			return fmt.Errorf("config: unknown log_level %q", s.LogLevel)
		}
	}
	return nil
}

// ApplyEnv exports the env map into the process environment so that probe
// commands and the env size strategy see it.
func (s *Settings) ApplyEnv() error {
	for _, k := range slices.Sorted(maps.Keys(s.Env)) {
		if err := os.Setenv(k, s.Env[k]); err != nil {
			return fmt.Errorf("setting %s: %w", k, err)
		}
	}
	return nil
}
