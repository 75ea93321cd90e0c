package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the concierge agent.
type Config struct {
	General  GeneralConfig  `mapstructure:"general"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Search   SearchConfig   `mapstructure:"search"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Location LocationConfig `mapstructure:"location"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Server   ServerConfig   `mapstructure:"server"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// LLMConfig selects and configures the text-generation backend.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"` // ollama or openai
	Host        string        `mapstructure:"host"`     // ollama base URL
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"` // openai only
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SearchConfig selects and configures the web-search backend.
type SearchConfig struct {
	Provider     string        `mapstructure:"provider"` // serper or brave
	SerperAPIKey string        `mapstructure:"serper_api_key"`
	BraveAPIKey  string        `mapstructure:"brave_api_key"`
	MaxResults   int           `mapstructure:"max_results"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// FetchConfig configures the page fetcher.
type FetchConfig struct {
	Fetcher  string        `mapstructure:"fetcher"` // http or chromedp
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxChars int           `mapstructure:"max_chars"`
}

// LocationConfig configures IP-based location resolution.
type LocationConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SMTPConfig carries the mail-transport credentials. Credentials are never
// compiled in; they arrive through config file or CONCIERGE_SMTP_* env vars.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Enabled reports whether the mail transport is fully configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Port > 0 && s.Username != "" && s.Password != ""
}

// ServerConfig contains the optional HTTP surface settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// CacheConfig configures the optional Redis page cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	DB      int           `mapstructure:"db"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// LoadConfig reads configuration from an optional .env file, a JSON config
// file and CONCIERGE_* environment variables, in that order of precedence
// (env wins). path may be empty to use the default search paths.
func LoadConfig(path string) (*Config, error) {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.host", "http://localhost:11434")
	viper.SetDefault("llm.model", "gemma3:latest")
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.timeout", 60*time.Second)
	viper.SetDefault("search.provider", "serper")
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.timeout", 15*time.Second)
	viper.SetDefault("fetch.fetcher", "http")
	viper.SetDefault("fetch.timeout", 15*time.Second)
	viper.SetDefault("fetch.max_chars", 8000)
	viper.SetDefault("location.endpoint", "http://ip-api.com/json/")
	viper.SetDefault("location.timeout", 10*time.Second)
	viper.SetDefault("smtp.port", 465)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.ttl", time.Hour)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("CONCIERGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env + defaults carry the rest.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Common bare env vars take effect even without the prefix, matching how
	// the tools are usually keyed in the wild.
	if cfg.Search.SerperAPIKey == "" {
		cfg.Search.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		cfg.LLM.Host = host
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		cfg.LLM.Model = model
	}

	return &cfg, nil
}

// Validate checks the settings required before any turn can run. It is the
// one fatal gate at startup; everything past it fails soft per stage.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama":
		if c.LLM.Host == "" {
			return fmt.Errorf("llm.host is required for the ollama provider")
		}
	case "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key (or OPENAI_API_KEY) is required for the openai provider")
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}

	switch c.Search.Provider {
	case "serper":
		if c.Search.SerperAPIKey == "" {
			return fmt.Errorf("search.serper_api_key (or SERPER_API_KEY) is not set")
		}
	case "brave":
		if c.Search.BraveAPIKey == "" {
			return fmt.Errorf("search.brave_api_key is not set")
		}
	default:
		return fmt.Errorf("unsupported search.provider %q", c.Search.Provider)
	}

	if c.Fetch.Fetcher != "http" && c.Fetch.Fetcher != "chromedp" {
		return fmt.Errorf("unsupported fetch.fetcher %q", c.Fetch.Fetcher)
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when cache.enabled is true")
	}
	return nil
}
