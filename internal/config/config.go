package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the TailWatch server.
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Slack  SlackConfig
	Dedup  DedupConfig
	AI     AIConfig
}

type ServerConfig struct {
	Port            int
	Env             string
	APIToken        string
	RateLimitPerMin int
}

type RedisConfig struct {
	URL string
}

type SlackConfig struct {
	WebhookURL string
	Username   string
	IconEmoji  string
	Timeout    time.Duration
}

type DedupConfig struct {
	Window time.Duration
}

type AIConfig struct {
	Provider         string
	InferenceTimeout time.Duration
	WorkersAI        WorkersAIConfig
	OpenAI           OpenAIConfig
	Ollama           OllamaConfig
}

type WorkersAIConfig struct {
	BaseURL       string
	AccountID     string
	APIToken      string
	AnalysisModel string
	SummaryModel  string
}

type OpenAIConfig struct {
	APIKey        string
	BaseURL       string
	AnalysisModel string
	SummaryModel  string
}

type OllamaConfig struct {
	BaseURL       string
	AnalysisModel string
	SummaryModel  string
}

var validProviders = map[string]bool{
	"workersai": true,
	"openai":    true,
	"ollama":    true,
}

// Load reads configuration from environment variables and returns a validated Config.
// Returns an error with a descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            envInt("TAILWATCH_PORT", 8080),
			Env:             envString("TAILWATCH_ENV", "development"),
			APIToken:        os.Getenv("TAILWATCH_API_TOKEN"),
			RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 120),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Slack: SlackConfig{
			WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
			Username:   envString("SLACK_USERNAME", "Error Monitor"),
			IconEmoji:  envString("SLACK_ICON_EMOJI", ":rotating_light:"),
			Timeout:    envDuration("SLACK_TIMEOUT", 10*time.Second),
		},
		Dedup: DedupConfig{
			Window: envDurationSecs("DEDUP_WINDOW_SECS", 3600*time.Second),
		},
		AI: AIConfig{
			Provider:         os.Getenv("AI_PROVIDER"),
			InferenceTimeout: envDurationSecs("AI_INFERENCE_TIMEOUT_SECS", 60*time.Second),
			WorkersAI: WorkersAIConfig{
				BaseURL:       envString("WORKERS_AI_BASE_URL", "https://api.cloudflare.com/client/v4"),
				AccountID:     os.Getenv("WORKERS_AI_ACCOUNT_ID"),
				APIToken:      os.Getenv("WORKERS_AI_API_TOKEN"),
				AnalysisModel: envString("WORKERS_AI_ANALYSIS_MODEL", "@cf/deepseek-ai/deepseek-r1-distill-qwen-32b"),
				SummaryModel:  envString("WORKERS_AI_SUMMARY_MODEL", "@cf/meta/llama-3.1-8b-instruct"),
			},
			OpenAI: OpenAIConfig{
				APIKey:        os.Getenv("OPENAI_API_KEY"),
				BaseURL:       envString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
				AnalysisModel: envString("OPENAI_ANALYSIS_MODEL", "gpt-4o"),
				SummaryModel:  envString("OPENAI_SUMMARY_MODEL", "gpt-4o-mini"),
			},
			Ollama: OllamaConfig{
				BaseURL:       envString("OLLAMA_BASE_URL", "http://localhost:11434"),
				AnalysisModel: envString("OLLAMA_ANALYSIS_MODEL", "llama3"),
				SummaryModel:  envString("OLLAMA_SUMMARY_MODEL", "llama3"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.APIToken == "" {
		return fmt.Errorf("TAILWATCH_API_TOKEN is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.Slack.WebhookURL == "" {
		return fmt.Errorf("SLACK_WEBHOOK_URL is required")
	}
	if !strings.HasPrefix(c.Slack.WebhookURL, "http://") && !strings.HasPrefix(c.Slack.WebhookURL, "https://") {
		return fmt.Errorf("SLACK_WEBHOOK_URL must start with http:// or https://, got %q", c.Slack.WebhookURL)
	}

	if c.Dedup.Window <= 0 {
		return fmt.Errorf("DEDUP_WINDOW_SECS must be positive")
	}

	if c.AI.Provider == "" {
		return fmt.Errorf("AI_PROVIDER is required")
	}
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of workersai, openai, ollama; got %q", c.AI.Provider)
	}

	if c.AI.Provider == "workersai" {
		if c.AI.WorkersAI.AccountID == "" {
			return fmt.Errorf("WORKERS_AI_ACCOUNT_ID is required when AI_PROVIDER is workersai")
		}
		if c.AI.WorkersAI.APIToken == "" {
			return fmt.Errorf("WORKERS_AI_API_TOKEN is required when AI_PROVIDER is workersai")
		}
	}
	if c.AI.Provider == "openai" && c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
