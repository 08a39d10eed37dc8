package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	LLM       LLMConfig       `mapstructure:"llm"`
	Gemini    ProviderConfig  `mapstructure:"gemini"`
	OpenAI    ProviderConfig  `mapstructure:"openai"`
	Claude    ProviderConfig  `mapstructure:"claude"`
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// LLMConfig selects the text generation provider
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
}

// ProviderConfig holds the credential and endpoint of one provider
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig bounds how often the HTTP surface may start an analysis
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Options tweak how Load resolves configuration.
type Options struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string
	// Provider overrides llm.provider before validation.
	Provider string
}

var providerEnvKeys = map[string]string{
	"gemini": "GEMINI_API_KEY",
	"openai": "OPENAI_API_KEY",
	"claude": "ANTHROPIC_API_KEY",
}

// Load reads configuration from a .env file, an optional rawmat.yaml and
// RAWMAT_* environment variables, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("rawmat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rawmat"))
		}
		v.AddConfigPath("/etc/rawmat/")
	}

	v.SetEnvPrefix("RAWMAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for provider, env := range providerEnvKeys {
		key := provider + ".api_key"
		if err := v.BindEnv(key, "RAWMAT_"+strings.ToUpper(provider)+"_API_KEY", env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if opts.Provider != "" {
		v.Set("llm.provider", opts.Provider)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	config.LLM.Provider = strings.ToLower(strings.TrimSpace(config.LLM.Provider))

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "gemini")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-2.0-flash")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "")

	v.SetDefault("claude.api_key", "")
	v.SetDefault("claude.base_url", "")
	v.SetDefault("claude.model", "")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("ratelimit.per_second", 1.0)
	v.SetDefault("ratelimit.burst", 3)

	v.SetDefault("log.level", "info")
}

// Provider returns the settings of the named provider.
func (c *Config) Provider(name string) (ProviderConfig, bool) {
	switch strings.ToLower(name) {
	case "gemini":
		return c.Gemini, true
	case "openai":
		return c.OpenAI, true
	case "claude":
		return c.Claude, true
	default:
		return ProviderConfig{}, false
	}
}

func validate(config *Config) error {
	provider, ok := config.Provider(config.LLM.Provider)
	if !ok {
		return fmt.Errorf("unsupported llm provider %q (supported: gemini, openai, claude)", config.LLM.Provider)
	}
	if provider.APIKey == "" {
		return fmt.Errorf("%s API key is required (set RAWMAT_%s_API_KEY or %s)",
			config.LLM.Provider, strings.ToUpper(config.LLM.Provider), providerEnvKeys[config.LLM.Provider])
	}
	if config.RateLimit.PerSecond <= 0 {
		return fmt.Errorf("ratelimit.per_second must be positive, got %v", config.RateLimit.PerSecond)
	}
	if config.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit.burst must be at least 1, got %d", config.RateLimit.Burst)
	}
	return nil
}
