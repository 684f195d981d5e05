package config

import (
	"strconv"
	"time"

	"banking-bpo/core/util"
)

// Config holds everything the process needs, loaded once at startup.
type Config struct {
	Port      int
	DataDir   string
	APIKey    string // dashboard login key; empty disables auth
	LogLevel  string
	LogFormat string

	// Extractor settings for the OpenAI-compatible API.
	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
	LLMVisionModel string
	LLMTimeout     time.Duration

	// Optional YAML file overriding the built-in extraction prompts.
	PromptsFile string
}

func Load() Config {
	port, err := strconv.Atoi(util.Getenv("PORT", "8080"))
	if err != nil {
		port = 8080
	}

	timeout, err := time.ParseDuration(util.Getenv("LLM_TIMEOUT", "60s"))
	if err != nil {
		timeout = 60 * time.Second
	}

	return Config{
		Port:           port,
		DataDir:        util.Getenv("DATA_DIR", "data"),
		APIKey:         util.Getenv("API_KEY", ""),
		LogLevel:       util.Getenv("LOG_LEVEL", "info"),
		LogFormat:      util.Getenv("LOG_FORMAT", "console"),
		LLMBaseURL:     util.Getenv("OPENAI_API_BASE", "https://api.openai.com/v1"),
		LLMAPIKey:      util.Getenv("OPENAI_API_KEY", ""),
		LLMModel:       util.Getenv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMVisionModel: util.Getenv("OPENAI_VISION_MODEL", "gpt-4o"),
		LLMTimeout:     timeout,
		PromptsFile:    util.Getenv("PROMPTS_FILE", ""),
	}
}
