package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mlorentedev/writeai/internal/adapter"
	"github.com/mlorentedev/writeai/internal/logging"
)

// Backend names accepted in the backend field.
const (
	BackendGemini   = "gemini"
	BackendClaude   = "claude"
	BackendOllama   = "ollama"
	BackendLlamaCpp = "llamacpp"
	BackendMock     = "mock"
)

// Config holds all application configuration. API keys have no defaults and
// are read only from the environment or a dotenv file, never from YAML.
type Config struct {
	Port            int           `yaml:"port"`
	Backend         string        `yaml:"backend"`
	GeminiAPIKey    string        `yaml:"-"`
	GeminiModel     string        `yaml:"gemini_model"`
	GeminiURL       string        `yaml:"gemini_url"`
	ClaudeAPIKey    string        `yaml:"-"`
	ClaudeModel     string        `yaml:"claude_model"`
	OllamaURL       string        `yaml:"ollama_url"`
	OllamaModel     string        `yaml:"ollama_model"`
	LlamaCppURL     string        `yaml:"llamacpp_url"`
	LlamaCppModel   string        `yaml:"llamacpp_model"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Port:            8090,
		Backend:         BackendGemini,
		GeminiModel:     adapter.GeminiDefaultModel,
		ClaudeModel:     adapter.ClaudeDefaultModel,
		OllamaModel:     adapter.OllamaDefaultModel,
		LlamaCppModel:   adapter.LlamaCppDefaultModel,
		UpstreamTimeout: 60 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then WRITEAI_* environment variables.
// A dotenv file named by WRITEAI_ENV_FILE, or ./.env when present, is read
// first; it never overrides variables that are already set.
func Load(path string) (Config, error) {
	cfg := defaults()

	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile() error {
	if p := os.Getenv("WRITEAI_ENV_FILE"); p != "" {
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load env file %s: %w", p, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("config: load .env: %w", err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("WRITEAI_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid WRITEAI_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("WRITEAI_UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid WRITEAI_UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}

	strs := []struct {
		env string
		dst *string
	}{
		{"WRITEAI_BACKEND", &cfg.Backend},
		{"WRITEAI_GEMINI_API_KEY", &cfg.GeminiAPIKey},
		{"WRITEAI_GEMINI_MODEL", &cfg.GeminiModel},
		{"WRITEAI_GEMINI_URL", &cfg.GeminiURL},
		{"WRITEAI_CLAUDE_API_KEY", &cfg.ClaudeAPIKey},
		{"WRITEAI_CLAUDE_MODEL", &cfg.ClaudeModel},
		{"WRITEAI_OLLAMA_URL", &cfg.OllamaURL},
		{"WRITEAI_OLLAMA_MODEL", &cfg.OllamaModel},
		{"WRITEAI_LLAMACPP_URL", &cfg.LlamaCppURL},
		{"WRITEAI_LLAMACPP_MODEL", &cfg.LlamaCppModel},
		{"WRITEAI_LOG_LEVEL", &cfg.LogLevel},
		{"WRITEAI_LOG_FORMAT", &cfg.LogFormat},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}
	return nil
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("upstream_timeout must be positive"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch c.Backend {
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("backend gemini requires gemini_api_key (WRITEAI_GEMINI_API_KEY)"))
		}
	case BackendClaude:
		if c.ClaudeAPIKey == "" {
			errs = append(errs, errors.New("backend claude requires claude_api_key (WRITEAI_CLAUDE_API_KEY)"))
		}
	case BackendOllama:
		if c.OllamaURL == "" {
			errs = append(errs, errors.New("backend ollama requires ollama_url"))
		}
	case BackendLlamaCpp:
		if c.LlamaCppURL == "" {
			errs = append(errs, errors.New("backend llamacpp requires llamacpp_url"))
		}
	case BackendMock:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
