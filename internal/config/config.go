package config

import (
	"strconv"
	"strings"
	"time"

	"pdf-md-translator/internal/domain"

	"github.com/spf13/viper"
)

const (
	defaultMaxFileSize = 50 * 1024 * 1024
	defaultSessionTTL  = 30 * time.Minute
	defaultDeepLURL    = "https://api-free.deepl.com/v2/translate"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	MaxFileSize     int64
	LogLevel        string
	PDFBackend      string
	DeepLURL        string
	LLMModel        string
	LLMBaseURL      string
	SessionTTL      time.Duration
	AllowedOrigins  []string
	SeedCredentials map[domain.ProviderKind]string
}

// NewConfig creates a new configuration instance from the environment
func NewConfig() domain.Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PDF_BACKEND", "native")
	v.SetDefault("DEEPL_API_URL", defaultDeepLURL)
	v.SetDefault("LLM_MODEL", "o3-mini")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5173")

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	port := v.GetString("PORT")
	if port == "" {
		port = v.GetString("SERVER_PORT")
	}

	seed := make(map[domain.ProviderKind]string)
	if key := strings.TrimSpace(v.GetString("DEEPL_API_KEY")); key != "" {
		seed[domain.ProviderDeepL] = key
	}
	if key := strings.TrimSpace(v.GetString("OPENAI_API_KEY")); key != "" {
		seed[domain.ProviderLLM] = key
	}

	return &AppConfig{
		ServerPort:      port,
		MaxFileSize:     parseInt64OrDefault(v.GetString("MAX_FILE_SIZE"), defaultMaxFileSize),
		LogLevel:        v.GetString("LOG_LEVEL"),
		PDFBackend:      strings.ToLower(v.GetString("PDF_BACKEND")),
		DeepLURL:        v.GetString("DEEPL_API_URL"),
		LLMModel:        v.GetString("LLM_MODEL"),
		LLMBaseURL:      v.GetString("LLM_BASE_URL"),
		SessionTTL:      parseDurationOrDefault(v.GetString("SESSION_TTL"), defaultSessionTTL),
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		SeedCredentials: seed,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFBackend returns the page source name (fitz or native)
func (c *AppConfig) GetPDFBackend() string {
	return c.PDFBackend
}

// GetDeepLURL returns the dedicated translation endpoint
func (c *AppConfig) GetDeepLURL() string {
	return c.DeepLURL
}

// GetLLMModel returns the chat model used for LLM translation
func (c *AppConfig) GetLLMModel() string {
	return c.LLMModel
}

// GetLLMBaseURL returns the OpenAI-compatible base URL, empty for the default
func (c *AppConfig) GetLLMBaseURL() string {
	return c.LLMBaseURL
}

// GetSessionTTL returns the idle lifetime of a session
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetSeedCredentials returns keys pre-seeded into every new session
func (c *AppConfig) GetSeedCredentials() map[domain.ProviderKind]string {
	out := make(map[domain.ProviderKind]string, len(c.SeedCredentials))
	for k, v := range c.SeedCredentials {
		out[k] = v
	}
	return out
}

func parseInt64OrDefault(value string, defaultValue int64) int64 {
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
		return intValue
	}
	return defaultValue
}

func parseDurationOrDefault(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
