package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	News     NewsConfig     `mapstructure:"news"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

// NewsConfig describes the news-search provider to use.
type NewsConfig struct {
	Provider string        `mapstructure:"provider"` // "newsapi" or "gnews"
	APIHost  string        `mapstructure:"api_host"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LLMConfig describes the chat-completion endpoint. BaseURL may point at any
// OpenAI-compatible host (Groq, OpenAI, a local gateway).
type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PipelineConfig struct {
	Workers         int           `mapstructure:"workers"`
	DefaultCount    int           `mapstructure:"default_count"`
	DefaultLookback int           `mapstructure:"default_lookback_days"`
	ArticleTimeout  time.Duration `mapstructure:"article_timeout"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal only sees keys that exist in the file; the secrets must be
	// bound explicitly so NEWS_API_KEY / LLM_API_KEY reach the struct even
	// when the yaml omits them.
	for _, key := range []string{"news.api_key", "llm.api_key"} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.News.Provider == "" {
		c.News.Provider = "newsapi"
	}
	if c.News.APIHost == "" {
		switch c.News.Provider {
		case "gnews":
			c.News.APIHost = "https://gnews.io"
		default:
			c.News.APIHost = "https://newsapi.org"
		}
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 15 * time.Second
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.Pipeline.Workers == 0 {
		c.Pipeline.Workers = 4
	}
	if c.Pipeline.DefaultCount == 0 {
		c.Pipeline.DefaultCount = 4
	}
	if c.Pipeline.DefaultLookback == 0 {
		c.Pipeline.DefaultLookback = 30
	}
	if c.Pipeline.ArticleTimeout == 0 {
		c.Pipeline.ArticleTimeout = 90 * time.Second
	}
}

// Validate rejects configurations that cannot serve a single request. Both
// upstream API keys are required before the server starts listening.
func (c *Config) Validate() error {
	if c.News.APIKey == "" {
		return fmt.Errorf("news.api_key is required (set NEWS_API_KEY)")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set LLM_API_KEY)")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	return nil
}
