package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// Path is an explicit TOML file. It must exist when set.
	Path string
	// SearchDir is where the upward search for FileName starts when Path is
	// empty. Defaults to the working directory.
	SearchDir string
	// DotEnv is the .env file to load. Defaults to ".env"; a missing file is
	// ignored.
	DotEnv string
	// SkipEnv disables .env and environment variables.
	SkipEnv bool
}

// Load resolves the configuration. It returns the TOML file used, if any.
func Load(opts LoadOptions) (Config, string, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		found, ok, err := findConfigFile(opts.SearchDir)
		if err != nil {
			return Config{}, "", err
		}

		if ok {
			path = found
		}
	}

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, "", err
		}
	}

	if !opts.SkipEnv {
		if err := loadDotEnv(opts.DotEnv); err != nil {
			return Config{}, "", err
		}

		if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
			return Config{}, "", fmt.Errorf("failed to read %s_* environment: %w", EnvPrefix, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

func decodeFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}

	return nil
}

// loadDotEnv loads a .env file if it exists.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// findConfigFile walks up from startDir looking for FileName.
func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}
