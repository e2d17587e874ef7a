package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/thruflo/spellbee/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultDictionaryPath = "/usr/share/dict/words"
	DefaultMinLength      = 3
	DefaultDwellMS        = 1500
	DefaultLogLevel       = "warn"
)

// Environment variables that override the config file.
const (
	EnvWords    = "SPELLBEE_WORDS"
	EnvDwellMS  = "SPELLBEE_DWELL_MS"
	EnvLogLevel = "SPELLBEE_LOG_LEVEL"
)

// Dir is the per-project directory holding config.yaml and .env.
const Dir = ".spellbee"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Dictionary: Dictionary{
			Path:      DefaultDictionaryPath,
			MinLength: DefaultMinLength,
		},
		Display: Display{
			DwellMS:     DefaultDwellMS,
			ClearScreen: true,
			Color:       true,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses .spellbee/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields, then environment overrides.
func LoadConfig(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, Dir, "config.yaml")

	cfg := DefaultConfig()
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	env, err := LoadEnv(basePath)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&cfg, env); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv merges .spellbee/.env with the process environment. Process
// variables win. A missing .env file is not an error.
func LoadEnv(basePath string) (map[string]string, error) {
	envPath := filepath.Join(basePath, Dir, ".env")

	env, err := godotenv.Read(envPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		env = make(map[string]string)
	}

	for _, key := range []string{EnvWords, EnvDwellMS, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides cfg with any recognized variables in env.
func ApplyEnv(cfg *Config, env map[string]string) error {
	if v, ok := env[EnvWords]; ok && v != "" {
		cfg.Dictionary.Path = v
	}
	if v, ok := env[EnvDwellMS]; ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return ValidationError{Field: EnvDwellMS, Message: "must be an integer"}
		}
		cfg.Display.DwellMS = ms
	}
	if v, ok := env[EnvLogLevel]; ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Dictionary.Path == "" {
		return ValidationError{Field: "dictionary.path", Message: "required field is empty"}
	}
	if cfg.Dictionary.MinLength < 1 {
		return ValidationError{Field: "dictionary.min_length", Message: "must be positive"}
	}
	if cfg.Display.DwellMS < 0 {
		return ValidationError{Field: "display.dwell_ms", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
