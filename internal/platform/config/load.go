package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml and APP_*
// environment variables. The result is validated before it is returned.
//
// Environment names are matched against the keys the earlier layers
// produced, so underscores inside a key survive:
//
//	APP_ENGINE_HISTORY_CAPACITY -> engine.history_capacity
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_NOTIFY_MAX_WORKERS -> notify.max_workers
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range []layer{
		{name: "defaults", load: loadDefaults},
		{name: "base config", load: loadYAML(filepath.Join(o.configDir, "base.yaml"))},
		{name: "profile config", load: loadYAML(filepath.Join(o.configDir, profile+".yaml"))},
		{name: "environment", load: loadEnv},
	} {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadDefaults seeds every known key, which also gives loadEnv the full key
// set to match against.
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// envKeys maps the environment spelling of each key (dots as underscores,
// no prefix) back to the key itself.
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}

// validateProfile rejects profiles that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
