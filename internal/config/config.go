package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries environment-level settings: where records live, which
// binaries to invoke, and the defaults applied to every agent spec.
type Config struct {
	DataDir        string
	ClaudeBin      string
	GeminiBin      string
	TimeoutSeconds int
	MaxTokens      int
	Temperature    float64
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	timeoutSeconds, err := envInt("DEBATE_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	maxTokens, err := envInt("DEBATE_MAX_TOKENS", 2000)
	if err != nil {
		return nil, err
	}
	temperature, err := envFloat("DEBATE_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}

	if timeoutSeconds < 1 {
		return nil, fmt.Errorf("config: DEBATE_TIMEOUT_SECONDS must be >= 1, got %d", timeoutSeconds)
	}
	if maxTokens < 1 {
		return nil, fmt.Errorf("config: DEBATE_MAX_TOKENS must be >= 1, got %d", maxTokens)
	}
	if temperature < 0 || temperature > 1 {
		return nil, fmt.Errorf("config: DEBATE_TEMPERATURE must be in [0,1], got %g", temperature)
	}

	return &Config{
		DataDir:        envStr("DEBATE_DATA_DIR", "data/debates"),
		ClaudeBin:      envStr("DEBATE_CLAUDE_BIN", "claude"),
		GeminiBin:      envStr("DEBATE_GEMINI_BIN", "gemini"),
		TimeoutSeconds: timeoutSeconds,
		MaxTokens:      maxTokens,
		Temperature:    temperature,
	}, nil
}

// LoadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: loading %s: %w", path, err)
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, s, err)
	}
	return v, nil
}

func envFloat(key string, defaultVal float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, s, err)
	}
	return v, nil
}
